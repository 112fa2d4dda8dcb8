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

package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	liberr "github.com/sabouaram/httpd/errors"
)

// BindFlags registers the operator-facing flags on fs and binds each one
// to viper under the same key used by Config's mapstructure tags, so an
// optional config file (loaded separately via LoadFile) can supply the
// same values. The config flag itself is bound too, so callers read the
// file path back with v.GetString("config").
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.BoolP("foreground", "f", false, "run in the foreground with interactive logging")
	fs.StringP("root", "r", "", "chroot root directory")
	fs.IntP("uid", "u", -1, "user id to drop privileges to (-1: unset)")
	fs.IntP("gid", "g", -1, "group id to drop privileges to (-1: unset)")
	fs.StringP("listen", "l", "", "IPv4 listen address")
	fs.Uint16P("port", "p", 8080, "listen port")
	fs.IntP("workers", "w", 1, "worker process count")
	fs.IntP("backlog", "b", 4096, "listen backlog")
	fs.StringP("config", "c", "", "optional configuration file")

	_ = v.BindPFlag("foreground", fs.Lookup("foreground"))
	_ = v.BindPFlag("root", fs.Lookup("root"))
	_ = v.BindPFlag("listen", fs.Lookup("listen"))
	_ = v.BindPFlag("port", fs.Lookup("port"))
	_ = v.BindPFlag("workers", fs.Lookup("workers"))
	_ = v.BindPFlag("backlog", fs.Lookup("backlog"))
	_ = v.BindPFlag("uid", fs.Lookup("uid"))
	_ = v.BindPFlag("gid", fs.Lookup("gid"))
	_ = v.BindPFlag("config", fs.Lookup("config"))
}

// FromViper builds a Config from the merged viper state. uid/gid use the
// sentinel -1 (unset) convention from BindFlags to decide whether the
// Config's pointer fields are populated at all.
func FromViper(v *viper.Viper) (Config, liberr.Error) {
	c := Defaults()

	if err := v.Unmarshal(&c); err != nil {
		return c, ErrorConfigFileRead.Error(err)
	}

	c.UID = nil
	c.GID = nil

	if uid := v.GetInt("uid"); uid >= 0 {
		c.UID = &uid
	}

	if gid := v.GetInt("gid"); gid >= 0 {
		c.GID = &gid
	}

	return c, nil
}

// LoadFile merges an optional config file (YAML/TOML/JSON, detected by
// extension) into v before FromViper is called. An empty path is a
// no-op; a file that does not exist, cannot be read or cannot be parsed
// is a startup error.
func LoadFile(v *viper.Viper, path string) liberr.Error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return ErrorConfigFileRead.Error(err)
	}

	return nil
}
