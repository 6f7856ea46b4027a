// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"github.com/bitmark-inc/logger"
)

type logReporter struct {
	log *logger.L
}

// NewLogReporter - a reporter writing to a logger channel
func NewLogReporter(log *logger.L) Reporter {
	return &logReporter{
		log: log,
	}
}

func (r *logReporter) Started(round int, seed int64) {
	r.log.Debugf("round: %d  seed: %d", round, seed)
}

func (r *logReporter) Finished(round int, size int, height int) {
	r.log.Infof("round: %d  size: %d  height: %d", round, size, height)
}

func (r *logReporter) Failed(round int, err error) {
	r.log.Errorf("round: %d  failed with error: %s", round, err)
}
