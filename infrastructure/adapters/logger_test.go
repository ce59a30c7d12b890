package adapters

import "generate-reel-api/application/ports/outbound"

type nopLogger struct{}

func newNopLogger() outbound.LoggerPort {
	return &nopLogger{}
}

func (l *nopLogger) Info(string)                                            {}
func (l *nopLogger) InfoWithFields(string, map[string]interface{})          {}
func (l *nopLogger) Error(error, string)                                    {}
func (l *nopLogger) ErrorWithFields(error, string, map[string]interface{})  {}
func (l *nopLogger) Debug(string)                                           {}
func (l *nopLogger) DebugWithFields(string, map[string]interface{})         {}
func (l *nopLogger) Warn(string)                                            {}
func (l *nopLogger) WarnWithFields(string, map[string]interface{})          {}
