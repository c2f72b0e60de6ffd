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

var (
	treeIDParam = Parameter{
		Name:        "treeId",
		In:          "path",
		Description: "An ID of a syllable tree",
		Required:    true,
		Schema: ParamSchema{
			Type: "string",
		},
	}

	maxItemsParam = Parameter{
		Name:        "maxItems",
		In:          "query",
		Description: "Maximum number of result items. The server configuration provides a default.",
		Required:    false,
		Schema: ParamSchema{
			Type: "integer",
		},
	}

	topSyllablesParam = Parameter{
		Name:        "topSyllables",
		In:          "query",
		Description: "Size of the most-frequent-syllables list. The server configuration provides a default.",
		Required:    false,
		Schema: ParamSchema{
			Type: "integer",
		},
	}
)

func NewResponse(ver, url string) *Response {
	paths := make(map[string]Methods)

	paths["/corpora"] = Methods{
		Get: &Method{
			Description: "Lists the known syllable trees, covering both the trees loaded in worker memory and the ones only present in the archive.",
			OperationID: "TreeList",
		},
	}

	paths["/corpora/{treeId}/tree"] = Methods{
		Post: &Method{
			Description: "Builds (or replaces) a named syllable tree. The request body is taken as the raw UTF-8 text to tokenize, tag and insert.",
			OperationID: "TreeBuild",
			Parameters:  []Parameter{treeIDParam},
		},
	}

	paths["/corpora/{treeId}/search"] = Methods{
		Get: &Method{
			Description: "Syllabifies a word and looks the syllable key up in the tree. A missing key is a regular answer with found=false.",
			OperationID: "TreeSearch",
			Parameters: []Parameter{
				treeIDParam,
				{
					Name:        "word",
					In:          "query",
					Description: "A word to look up",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/corpora/{treeId}/prefix-search"] = Methods{
		Get: &Method{
			Description: "Lists the entries below a syllable prefix. Whole syllables are matched, not characters; the prefix `мо` covers мо-ло-ко but never мол.",
			OperationID: "TreePrefixSearch",
			Parameters: []Parameter{
				treeIDParam,
				{
					Name:        "syllables",
					In:          "query",
					Description: "Comma-separated syllable prefix (e.g. за,мо)",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				maxItemsParam,
			},
		},
	}

	paths["/corpora/{treeId}/entries"] = Methods{
		Get: &Method{
			Description: "Lists the tree entries in their depth-first first-insertion order, i.e. matching the order the words first appeared in the source text.",
			OperationID: "TreeEntries",
			Parameters:  []Parameter{treeIDParam, maxItemsParam},
		},
	}

	paths["/corpora/{treeId}/stats"] = Methods{
		Get: &Method{
			Description: "Shows structural statistics of a syllable tree: key, node and depth counts, per-level distribution, average branching and the most frequent syllables.",
			OperationID: "TreeStats",
			Parameters:  []Parameter{treeIDParam, topSyllablesParam},
		},
	}

	paths["/corpora/{treeId}/report"] = Methods{
		Get: &Method{
			Description: "Produces a summary report of a syllable tree, either as JSON or as a Markdown document.",
			OperationID: "TreeReport",
			Parameters: []Parameter{
				treeIDParam,
				topSyllablesParam,
				{
					Name:        "format",
					In:          "query",
					Description: "Report format. By default, `json` is used.",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
						Enum: []string{"json", "markdown"},
					},
				},
			},
		},
	}

	paths["/corpora/{treeId}"] = Methods{
		Delete: &Method{
			Description: "Removes a syllable tree from worker memory and from the archive.",
			OperationID: "TreeDrop",
			Parameters:  []Parameter{treeIDParam},
		},
	}

	paths["/analysis/tags"] = Methods{
		Post: &Method{
			Description: "Tags a single word and resolves its homonymy against the provided context words.",
			OperationID: "TagWord",
			Parameters: []Parameter{
				{
					Name:        "word",
					In:          "query",
					Description: "A word to tag",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "prev",
					In:          "query",
					Description: "Comma-separated preceding context words, the nearest one last",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "next",
					In:          "query",
					Description: "Comma-separated following context words, the nearest one first",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/syllables"] = Methods{
		Get: &Method{
			Description: "Splits a word into syllables. A word without a vowel comes back as a single syllable.",
			OperationID: "Syllabify",
			Parameters: []Parameter{
				{
					Name:        "word",
					In:          "query",
					Description: "A word to split",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	return &Response{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "SYLTRIE - build and search syllable-keyed morphological trees",
			Description: "Ingests texts and builds searchable trees keyed by syllable decomposition, with context-disambiguated morphological records attached",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
		Components: Components{
			Schemas: createSchemas(),
		},
	}
}
