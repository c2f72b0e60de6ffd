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
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"syltrie/cnf"
	"syltrie/report"
	"syltrie/treebank"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

var (
	analyzeReportPath = flag.String(
		"report-out", "", "analyze: path to write a Markdown report to")
	analyzeDumpPath = flag.String(
		"json-out", "", "analyze: path to write a JSON dump of the built tree to")
)

// runAnalyze performs the whole pipeline locally on a single text
// file, without Redis or workers. It is meant for ad-hoc exploration
// and for testing a configuration.
func runAnalyze(conf *cnf.Conf, srcPath string) {
	if srcPath == "" {
		log.Fatal().Msg("missing a file to analyze")
	}
	rawText, err := os.ReadFile(srcPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read the input file")
	}
	pipeline, err := treebank.NewPipeline(conf.TreeBank)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create processing pipeline")
	}
	build, err := pipeline.BuildTree(string(rawText))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build the tree")
	}
	summary := report.Summarize(
		filepath.Base(srcPath), build, conf.TreeBank.TopSyllables)
	out, err := sonic.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode the summary")
	}
	fmt.Println(string(out))

	if *analyzeReportPath != "" {
		err := os.WriteFile(*analyzeReportPath, []byte(report.ToMarkdown(summary)), 0644)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to write the Markdown report")
		}
		log.Info().Str("path", *analyzeReportPath).Msg("written Markdown report")
	}
	if *analyzeDumpPath != "" {
		data, err := build.Tree.Serialize()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to serialize the tree")
		}
		if err := os.WriteFile(*analyzeDumpPath, data, 0644); err != nil {
			log.Fatal().Err(err).Msg("failed to write the tree dump")
		}
		log.Info().Str("path", *analyzeDumpPath).Msg("written tree dump")
	}
}
