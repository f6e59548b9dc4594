// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/background"
	"github.com/bitmark-inc/logger"
)

func TestWatcherAppliesChanges(t *testing.T) {
	fileName := writeConfiguration(t, "watcher", `
return {
    data_directory = ".",
    chain = "local",
    database = { maximum_size = 1000 },
}
`)

	applied := make(chan uint64, 10)
	w, err := newConfigWatcher(fileName, logger.New("testing"), func(c *Configuration) {
		applied <- c.Database.MaximumSize
	})
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}

	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	// let the watcher start reading events
	time.Sleep(50 * time.Millisecond)

	err = ioutil.WriteFile(fileName, []byte(`
return {
    data_directory = ".",
    chain = "local",
    database = { maximum_size = 2000 },
}
`), 0600)
	assert.Nil(t, err, "rewrite configuration")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case size := <-applied:
			if 2000 == size {
				return
			}
		case <-timeout:
			t.Fatal("configuration change not applied")
		}
	}
}

func TestWatcherEvents(t *testing.T) {
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Create}), "create")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove as change")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write as remove")
}
