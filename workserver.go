// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYLTRIE.
//
//  SYLTRIE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYLTRIE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYLTRIE.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"syltrie/cnf"
	"syltrie/monitoring"
	"syltrie/rdb"
	"syltrie/treebank"
	"syltrie/treedb"
	"syltrie/worker"

	"github.com/rs/zerolog/log"
)

func getWorkerID() (workerID string) {
	workerID = getEnv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

// NullStatusWriter is used in place of a TimescaleDB writer when
// the monitoring database is not configured.
type NullStatusWriter struct{}

func (n *NullStatusWriter) Write(rec rdb.JobLog) {}

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	pipeline, err := treebank.NewPipeline(conf.TreeBank)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create processing pipeline")
	}

	var archive worker.TreeArchive
	if conf.TreeDB != nil {
		db, err := treedb.Open(conf.TreeDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to the tree archive database")
		}
		archive = treedb.NewArchive(ctx, db, conf.TreeDB)

	} else {
		log.Warn().Msg("tree archive not configured, trees will not survive worker restarts")
	}

	var statusWriter monitoring.StatusWriter
	var services []service
	if conf.Monitoring != nil {
		tsw, err := monitoring.NewTimescaleDBWriter(
			ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to the monitoring database")
		}
		statusWriter = tsw
		services = append(services, tsw)

	} else {
		log.Warn().Msg("monitoring database not configured, job logs will stay in memory only")
		statusWriter = &NullStatusWriter{}
	}
	jobLogger := monitoring.NewWorkerJobLogger(statusWriter, conf.TimezoneLocation())
	services = append(services, jobLogger)

	ch := radapter.Subscribe()
	wrk := worker.NewWorker(
		workerID, radapter, ch, jobLogger, conf.TreeBank, pipeline, archive)
	services = append(services, wrk)

	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
