package main

import "log"

type logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	*log.Logger
}

func (l stdLogger) Infof(format string, v ...interface{})  { l.Printf("[INFO] "+format, v...) }
func (l stdLogger) Errorf(format string, v ...interface{}) { l.Printf("[ERROR] "+format, v...) }
