package collector

import (
	"context"
	"errors"
	"fmt"

	"netcollector/core/reconcile"
	"netcollector/core/rules"
	"netcollector/core/store"
	"netcollector/core/textfsm"
	"netcollector/core/vendor"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Request is one submission of raw command output.
type Request struct {
	Hostname string `json:"Hostname" validate:"required"`
	Command  string `json:"Command" validate:"required"`
	Data     string `json:"Data" validate:"required"`
}

// Parser turns raw text into records with a named template.
type Parser interface {
	Parse(ctx context.Context, template, text string) ([]textfsm.Record, error)
}

// Service dispatches submitted output to the reconciler selected by the rule index.
type Service struct {
	store    store.Store
	rules    *rules.Index
	registry *reconcile.Registry
	parser   Parser
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new dispatch service.
func NewService(st store.Store, index *rules.Index, registry *reconcile.Registry, parser Parser, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    st,
		rules:    index,
		registry: registry,
		parser:   parser,
		validate: validator.New(),
		logger:   logger,
	}
}

// Process runs one request end to end. It never panics and never returns an
// error of its own: every outcome is a Result.
func (s *Service) Process(ctx context.Context, req Request) (res reconcile.Result) {
	return s.process(ctx, s.logger, req)
}

func (s *Service) process(ctx context.Context, l *zap.Logger, req Request) (res reconcile.Result) {
	if err := s.validate.Struct(req); err != nil {
		l.Warn("Malformed collector request", zap.Error(err))
		return reconcile.Failure(reconcile.ErrMalformedRequest, "Cannot parse a query - check all parameters")
	}
	l = l.With(zap.String("hostname", req.Hostname), zap.String("command", req.Command))

	device, err := s.store.FindDevice(ctx, req.Hostname)
	if errors.Is(err, store.ErrNotFound) {
		l.Warn("Device not found")
		return reconcile.Failure(reconcile.ErrDeviceNotFound, "Not found device by hostname: %s", req.Hostname)
	}
	if err != nil {
		l.Error("Device lookup failed", zap.Error(err))
		return reconcile.Result{
			Message: fmt.Sprintf("Cannot load device %s: %v", req.Hostname, err),
			Err:     err,
		}
	}

	vendorName := vendor.ForDevice(device)
	rule, ok := s.rules.Match(vendorName, req.Command)
	var handler reconcile.Reconciler
	if ok {
		handler, ok = s.registry.Lookup(rule.Handler)
		if !ok {
			l.Error("Rule references an unregistered handler", zap.String("handler", rule.Handler))
		}
	}
	if !ok {
		l.Info("No rule for vendor and command", zap.String("vendor", vendorName))
		return reconcile.Failure(reconcile.ErrUnsupportedOperation,
			"Function for process this command or for this vendor is not implemented yet")
	}
	l = l.With(zap.String("vendor", vendorName), zap.String("template", rule.Template), zap.String("handler", rule.Handler))

	records, err := s.parser.Parse(ctx, rule.Template, req.Data)
	if err != nil {
		l.Warn("Parse failed", zap.Error(err))
		return reconcile.Result{
			Message: fmt.Sprintf("Error while parsing. %v", err),
			Err:     fmt.Errorf("%w: %v", reconcile.ErrParseFailure, err),
		}
	}
	if len(records) == 0 {
		l.Info("Parse produced no records")
		return reconcile.Failure(reconcile.ErrEmptyResult, "Cannot parse a command output - check template or command")
	}

	defer func() {
		if r := recover(); r != nil {
			l.Error("Handler panicked", zap.Any("panic", r))
			res = reconcile.Result{
				Message: fmt.Sprintf("Device %s: handler %s failed: %v", device.Name, rule.Handler, r),
				Err:     fmt.Errorf("handler %s panicked: %v", rule.Handler, r),
			}
		}
	}()

	l.Debug("Dispatching records", zap.Int("records", len(records)))
	res = handler.Reconcile(ctx, device, records)
	l.Info("Request processed", zap.Bool("result", res.Success), zap.String("detail", res.Message))
	return res
}

// Commands lists the known command patterns with their description.
func (s *Service) Commands() map[string]string {
	return s.rules.Commands()
}
