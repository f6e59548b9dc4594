// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

const watcherLoggerPrefix = "watcher"

// configWatcher - re-read the configuration file whenever it changes
//
// the containing directory is watched so that editors which replace
// the file by rename are still detected
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	apply    func(*Configuration)
}

func newConfigWatcher(configurationFile string, log *logger.L, apply func(*Configuration)) (*configWatcher, error) {

	fileName, err := filepath.Abs(filepath.Clean(configurationFile))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filepath.Dir(fileName))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	w := &configWatcher{
		log:      log,
		watcher:  watcher,
		fileName: fileName,
		apply:    apply,
	}
	return w, nil
}

// Run - background process
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	defer w.watcher.Close()

	log.Infof("watching: %q", w.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.fileName) {
				continue loop
			}
			log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				log.Warnf("configuration: %q removed, keeping current settings", w.fileName)
				continue loop
			}
			if watcherEventFileChange(event) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("stopped")
}

func (w *configWatcher) reload() {
	configuration, err := getConfiguration(w.fileName)
	if nil != err {
		w.log.Errorf("reload: %q  error: %s", w.fileName, err)
		return
	}
	w.apply(configuration)
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
