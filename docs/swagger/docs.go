// Package swagger registers the OpenAPI description of the collector API.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/collector/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["collector"],
                "summary": "Collector Usage",
                "responses": {
                    "200": {
                        "description": "Usage hint",
                        "schema": {"$ref": "#/definitions/collector.Response"}
                    }
                }
            },
            "post": {
                "description": "Parses raw command output captured from a device and reconciles it with the inventory.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collector"],
                "summary": "Submit Command Output",
                "parameters": [
                    {
                        "description": "Hostname, command and raw output",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/collector.Request"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Processing result",
                        "schema": {"$ref": "#/definitions/collector.Response"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/api/collector/commands": {
            "get": {
                "description": "Lists every command pattern of the rule index with its description.",
                "produces": ["application/json"],
                "tags": ["collector"],
                "summary": "List Commands",
                "responses": {
                    "200": {
                        "description": "Command listing",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Checks the rule index templates and handlers, then the inventory database schema.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {
                        "description": "Combined Report",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/integrity/server": {
            "get": {
                "description": "Checks if the inventory database schema matches the expected models.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Server Schema",
                "responses": {
                    "200": {
                        "description": "Server Check Report",
                        "schema": {"$ref": "#/definitions/checks.ServerReport"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/integrity/templates": {
            "get": {
                "description": "Loads and compiles every template of the rule index and verifies that every handler is registered.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Templates",
                "responses": {
                    "200": {
                        "description": "Templates Report",
                        "schema": {"$ref": "#/definitions/checks.RulesReport"}
                    }
                }
            }
        }
    },
    "definitions": {
        "collector.Request": {
            "type": "object",
            "required": ["Command", "Data", "Hostname"],
            "properties": {
                "Command": {"type": "string"},
                "Data": {"type": "string"},
                "Hostname": {"type": "string"}
            }
        },
        "collector.Response": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "result": {"type": "boolean"}
            }
        },
        "checks.RulesReport": {
            "type": "object",
            "properties": {
                "invalid_templates": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/checks.TemplateIssue"}
                },
                "rules": {"type": "integer"},
                "status": {"type": "string"},
                "templates": {"type": "integer"},
                "unknown_handlers": {"type": "array", "items": {"type": "string"}}
            }
        },
        "checks.TemplateIssue": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "template": {"type": "string"}
            }
        },
        "checks.ServerReport": {
            "type": "object",
            "properties": {
                "driver": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "tables": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}
                }
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [{"ApiKeyAuth": []}]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Network Collector API",
	Description:      "API for syncing network device command output into the inventory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
