/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
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

// Package config holds the operator-facing Configuration entity (spec §3)
// and its validation. Values are layered CLI flags over an optional config
// file over built-in defaults, using viper; validator struct tags enforce
// the invariants before the privilege-descent pipeline ever runs.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	liberr "github.com/sabouaram/httpd/errors"
)

// Config is the immutable-once-built Configuration entity from spec §3.
// UID/GID are pointers so "operator did not pass -u/-g" is distinguishable
// from "operator passed -u 0" (root is a legitimate, if unusual, target).
type Config struct {
	Root       string `mapstructure:"root"`
	Listen     string `mapstructure:"listen" validate:"required,ipv4"`
	Port       uint16 `mapstructure:"port" validate:"required"`
	Workers    int    `mapstructure:"workers" validate:"required,min=1"`
	Backlog    int    `mapstructure:"backlog" validate:"required,min=1"`
	UID        *int   `mapstructure:"uid"`
	GID        *int   `mapstructure:"gid"`
	Foreground bool   `mapstructure:"foreground"`
}

// Defaults matches spec §3: Port=8080, Workers=1, Backlog=4096.
func Defaults() Config {
	return Config{
		Port:    8080,
		Workers: 1,
		Backlog: 4096,
	}
}

// Validate runs struct-tag validation and returns a registered CodeError
// on failure, per SPEC_FULL §4.8/§7 (a validation failure is a startup
// error: the command prints it to stderr and exits 1 before any
// privileged operation runs).
func (c Config) Validate() liberr.Error {
	val := validator.New()

	if err := val.Struct(c); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return ErrorConfigValidate.Error(err)
		}

		out := ErrorConfigValidate.Error(nil)

		for _, e := range err.(validator.ValidationErrors) {
			out.Add(fmt.Errorf("field %q fails constraint %q", e.Field(), e.ActualTag()))
		}

		return out
	}

	return nil
}

func (c Config) HasUID() bool { return c.UID != nil }
func (c Config) HasGID() bool { return c.GID != nil }

func (c Config) GetUID() int {
	if c.UID == nil {
		return 0
	}
	return *c.UID
}

func (c Config) GetGID() int {
	if c.GID == nil {
		return 0
	}
	return *c.GID
}
