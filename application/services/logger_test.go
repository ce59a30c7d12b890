package services

import "generate-reel-api/application/ports/outbound"

type testLogger struct{}

func newTestLogger() outbound.LoggerPort {
	return &testLogger{}
}

func (l *testLogger) Info(string)                                        {}
func (l *testLogger) InfoWithFields(string, map[string]interface{})      {}
func (l *testLogger) Error(error, string)                                {}
func (l *testLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (l *testLogger) Debug(string)                                       {}
func (l *testLogger) DebugWithFields(string, map[string]interface{})     {}
func (l *testLogger) Warn(string)                                        {}
func (l *testLogger) WarnWithFields(string, map[string]interface{})      {}
