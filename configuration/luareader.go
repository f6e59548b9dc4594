// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/linktreed/fault"
)

// ParseConfigurationFile - execute a Lua configuration file and copy
// the returned table into config
//
// globals available to the script:
//
//	arg[0]    - the configuration file name
//	directory - the directory holding the configuration file
func ParseConfigurationFile(fileName string, config interface{}) error {

	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ConfigurationNotFound
		}
		return err
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)
	L.SetGlobal("directory", lua.LString(filepath.Dir(fileName)))

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.InvalidConfiguration
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
