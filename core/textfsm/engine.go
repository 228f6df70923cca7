package textfsm

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/netxops/gotextfsm"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Engine loads templates from a Source and parses text with them.
// Template texts are validated and cached on first use.
type Engine struct {
	source Source
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]string
	sf    singleflight.Group
}

// NewEngine creates an engine reading templates from source.
func NewEngine(source Source, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		source: source,
		logger: logger,
		cache:  make(map[string]string),
	}
}

// Load returns the text of a template, reading and validating it on first use.
func (e *Engine) Load(ctx context.Context, name string) (string, error) {
	e.mu.RLock()
	text, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return text, nil
	}

	v, err, _ := e.sf.Do(name, func() (any, error) {
		e.mu.RLock()
		text, ok := e.cache[name]
		e.mu.RUnlock()
		if ok {
			return text, nil
		}

		rc, err := e.source.Open(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to open template %s: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		text = string(data)

		if _, err := compile(text); err != nil {
			return nil, fmt.Errorf("invalid template %s: %w", name, err)
		}

		e.mu.Lock()
		e.cache[name] = text
		e.mu.Unlock()

		e.logger.Debug("Template loaded", zap.String("template", name))
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Parse runs the named template over text and returns the records in order.
func (e *Engine) Parse(ctx context.Context, name, text string) ([]Record, error) {
	tpl, err := e.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return ParseString(tpl, text)
}

// Cached returns how many templates are cached.
func (e *Engine) Cached() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// ParseString parses text with a template given as source text.
func ParseString(template, text string) (records []Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("template engine panic: %v", r)
		}
	}()

	fsm, err := compile(template)
	if err != nil {
		return nil, err
	}

	parser := gotextfsm.ParserOutput{}
	if err := parser.ParseTextString(text, fsm, true); err != nil {
		return nil, fmt.Errorf("failed to parse text: %w", err)
	}

	records = make([]Record, 0, len(parser.Dict))
	for _, row := range parser.Dict {
		records = append(records, NewRecord(row))
	}
	return records, nil
}

func compile(template string) (fsm gotextfsm.TextFSM, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("template engine panic: %v", r)
		}
	}()

	fsm = gotextfsm.TextFSM{}
	if err := fsm.ParseString(template); err != nil {
		return fsm, fmt.Errorf("failed to compile template: %w", err)
	}
	return fsm, nil
}
