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

package openapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"syltrie/cnf"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

func findHTTPProtocol(req *http.Request) string {
	if prot := req.Header.Get("x-forwarded-proto"); prot != "" {
		return prot
	}
	if req.TLS != nil {
		return "https"
	}
	return "http"
}

func findHTTPServer(req *http.Request) string {
	if serv := req.Header.Get("x-forwarded-host"); serv != "" {
		return serv
	}
	return req.Host
}

func findPath(req *http.Request) string {
	if path := req.Header.Get("x-original-path"); path != "" {
		return path
	}
	return req.URL.Path
}

// findCurrentPublicURL determines the base URL the client used to
// reach the service. When running behind a reverse proxy, the
// x-forwarded-* and x-original-path headers take precedence over the
// request's own values. If the configured public URL matches, it is
// preferred so the advertised server entry stays stable.
func findCurrentPublicURL(conf *cnf.Conf, req *http.Request) string {
	proto := findHTTPProtocol(req)
	host := findHTTPServer(req)
	path := findPath(req)
	curr, err := url.JoinPath(fmt.Sprintf("%s://%s", proto, host), path)
	if err != nil {
		panic(fmt.Errorf("cannot find current public url: %w", err))
	}
	if conf.PublicURL != "" && strings.HasPrefix(curr, conf.PublicURL) {
		return conf.PublicURL
	}
	return strings.TrimSuffix(curr, "/openapi")
}

func MkHandleRequest(conf *cnf.Conf, ver string) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		publicURL := findCurrentPublicURL(conf, ctx.Request)
		ans := NewResponse(ver, publicURL)
		uniresp.WriteJSONResponse(ctx.Writer, ans)
	}
}
