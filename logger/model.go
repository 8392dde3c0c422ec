/*
 * MIT License
 *
 * Copyright (c) 2026 ClipShare-Desktop Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package logger

import (
	"context"
	"log"
	"sync"

	"github.com/sirupsen/logrus"
)

type lgr struct {
	m   sync.RWMutex
	ctx context.Context
	log *logrus.Logger
	fld Fields
}

func newLogrusLogger(ctx context.Context) Logger {
	if ctx == nil {
		ctx = context.Background()
	}

	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)

	return &lgr{
		ctx: ctx,
		log: l,
		fld: make(Fields),
	}
}

func (o *lgr) Write(p []byte) (int, error) {
	return o.log.Writer().Write(p)
}

func (o *lgr) SetLevel(lvl Level) {
	o.m.Lock()
	defer o.m.Unlock()
	o.log.SetLevel(lvl.logrus())
}

func (o *lgr) GetLevel() Level {
	o.m.RLock()
	defer o.m.RUnlock()

	switch o.log.GetLevel() {
	case logrus.DebugLevel:
		return DebugLevel
	case logrus.WarnLevel:
		return WarnLevel
	case logrus.ErrorLevel:
		return ErrorLevel
	case logrus.FatalLevel:
		return FatalLevel
	case logrus.PanicLevel:
		return PanicLevel
	default:
		return InfoLevel
	}
}

func (o *lgr) SetFields(f Fields) {
	o.m.Lock()
	defer o.m.Unlock()

	n := make(Fields, len(f))
	for k, v := range f {
		n[k] = v
	}
	o.fld = n
}

func (o *lgr) GetFields() Fields {
	o.m.RLock()
	defer o.m.RUnlock()

	n := make(Fields, len(o.fld))
	for k, v := range o.fld {
		n[k] = v
	}
	return n
}

func (o *lgr) Clone() Logger {
	o.m.RLock()
	defer o.m.RUnlock()

	n := &lgr{
		ctx: o.ctx,
		log: o.log,
		fld: make(Fields, len(o.fld)),
	}
	for k, v := range o.fld {
		n.fld[k] = v
	}
	return n
}

func (o *lgr) GetStdLogger(lvl Level, flags int) *log.Logger {
	o.SetLevel(lvl)
	return log.New(o.log.Writer(), "", flags)
}

func (o *lgr) entry(fields Fields) *logrus.Entry {
	o.m.RLock()
	base := o.fld
	o.m.RUnlock()

	merged := make(logrus.Fields, len(base)+len(fields))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return o.log.WithFields(merged)
}

func (o *lgr) Debug(message string, fields Fields) {
	o.entry(fields).Debug(message)
}

func (o *lgr) Info(message string, fields Fields) {
	o.entry(fields).Info(message)
}

func (o *lgr) Warning(message string, fields Fields) {
	o.entry(fields).Warning(message)
}

func (o *lgr) Error(message string, err error, fields Fields) {
	if err != nil {
		o.entry(fields).WithError(err).Error(message)
		return
	}
	o.entry(fields).Error(message)
}

func (o *lgr) CheckError(lvlKO, lvlOK Level, message string, err error) bool {
	if err != nil {
		o.entry(nil).WithError(err).Log(lvlKO.logrus(), message)
		return false
	}

	if lvlOK != NilLevel {
		o.entry(nil).Log(lvlOK.logrus(), message)
	}
	return true
}
