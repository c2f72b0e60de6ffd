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
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"syltrie/cnf"
	"syltrie/docs"
	"syltrie/general"
	"syltrie/openapi"
	"syltrie/rdb"
	"syltrie/treebank/handlers"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	radapter *rdb.Adapter
	version  general.VersionInfo
}

func mkServerInfo(version general.VersionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, struct {
			Name string `json:"name"`
			general.VersionInfo
		}{
			Name:        "SYLTRIE - a syllable tree building and querying server",
			VersionInfo: version,
		})
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	treeActions := handlers.NewActions(api.conf.TreeBank, api.radapter)

	engine.GET("/", mkServerInfo(api.version))

	docs.SwaggerInfo.Version = api.version.Version
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/openapi", openapi.MkHandleRequest(api.conf, api.version.Version))

	protected := engine.Group("/").Use(AuthRequired(api.conf))

	protected.POST(
		"/corpora/:treeId/tree", treeActions.TreeBuild)

	protected.DELETE(
		"/corpora/:treeId", treeActions.TreeDrop)

	engine.GET(
		"/corpora", treeActions.TreeList)

	engine.GET(
		"/corpora/:treeId/search", treeActions.TreeSearch)

	engine.GET(
		"/corpora/:treeId/prefix-search", treeActions.TreePrefixSearch)

	engine.GET(
		"/corpora/:treeId/entries", treeActions.TreeEntries)

	engine.GET(
		"/corpora/:treeId/stats", treeActions.TreeStats)

	engine.GET(
		"/corpora/:treeId/report", treeActions.TreeReport)

	engine.POST(
		"/analysis/tags", treeActions.TagWord)

	engine.GET(
		"/syllables", treeActions.Syllabify)

	engine.GET(
		"/monitoring/workers", treeActions.WorkerInfo)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down SYLTRIE HTTP API server")
	return api.server.Shutdown(ctx)
}

func newAPIServer(
	conf *cnf.Conf,
	radapter *rdb.Adapter,
	version general.VersionInfo,
) *apiServer {
	return &apiServer{
		conf:     conf,
		radapter: radapter,
		version:  version,
	}
}

func runApiServer(conf *cnf.Conf, version general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	radapter := rdb.NewAdapter(conf.Redis, ctx)
	err := radapter.TestConnection(redisConnectionTestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}
	server := newAPIServer(conf, radapter, version)

	services := []service{server}
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
