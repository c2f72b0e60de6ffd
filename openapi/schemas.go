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

// parseProps describes one morphological analysis as shared by
// records, candidates and resolutions.
func parseProps() ObjectProperties {
	return ObjectProperties{
		"lemma": ObjectProperty{
			Type: "string",
		},
		"pos": ObjectProperty{
			Type: "string",
			Enum: []string{
				"NOUN", "VERB", "INFN", "ADJF", "ADVB",
				"NPRO", "CONJ", "PREP", "UNKN",
			},
		},
		"features": ObjectProperty{
			Type: "object",
			AdditionalProperties: &AdditionalProperty{
				Type: "string",
			},
			Description: "grammatical feature name to value, e.g. case=genitive",
		},
	}
}

func entryItem() *arrayItem {
	return &arrayItem{
		Type: "object",
		Properties: ObjectProperties{
			"key": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "string",
				},
				Description: "the ordered syllable sequence identifying the wordform",
			},
			"records": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type:       "object",
					Properties: parseProps(),
				},
			},
		},
	}
}

func statsProps() ObjectProperties {
	return ObjectProperties{
		"keyCount": ObjectProperty{
			Type: "number",
		},
		"nodeCount": ObjectProperty{
			Type: "number",
		},
		"maxDepth": ObjectProperty{
			Type: "number",
		},
		"levelDistribution": ObjectProperty{
			Type: "object",
			AdditionalProperties: &AdditionalProperty{
				Type: "number",
			},
			Description: "number of nodes per tree level",
		},
		"avgBranching": ObjectProperty{
			Type: "number",
		},
		"topSyllables": ObjectProperty{
			Type: "array",
			Items: &arrayItem{
				Type: "object",
				Properties: ObjectProperties{
					"syllable": ObjectProperty{
						Type: "string",
					},
					"count": ObjectProperty{
						Type: "number",
					},
				},
			},
		},
	}
}

func summaryProp() ObjectProperty {
	return ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"name": ObjectProperty{
				Type: "string",
			},
			"tokensTotal": ObjectProperty{
				Type: "number",
			},
			"tokensInserted": ObjectProperty{
				Type: "number",
			},
			"tokensSkipped": ObjectProperty{
				Type: "number",
			},
			"posCounts": ObjectProperty{
				Type: "object",
				AdditionalProperties: &AdditionalProperty{
					Type: "number",
				},
				Description: "number of inserted tokens per part of speech",
			},
			"stats": ObjectProperty{
				Type:       "object",
				Properties: statsProps(),
			},
		},
	}
}

func createSchemas() ObjectProperties {
	ans := make(ObjectProperties)

	ans["TreeBuild"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"treeId": ObjectProperty{
				Type: "string",
			},
			"summary": summaryProp(),
		},
	}

	ans["TreeSearch"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"word": ObjectProperty{
				Type: "string",
			},
			"syllables": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "string",
				},
			},
			"records": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type:       "object",
					Properties: parseProps(),
				},
			},
			"found": ObjectProperty{
				Type:        "boolean",
				Description: "false means a regular lookup miss, not an error",
			},
		},
	}

	ans["TreePrefixSearch"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"prefix": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "string",
				},
			},
			"entries": ObjectProperty{
				Type:  "array",
				Items: entryItem(),
			},
			"truncated": ObjectProperty{
				Type: "boolean",
			},
		},
	}

	ans["TreeEntries"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"entries": ObjectProperty{
				Type:  "array",
				Items: entryItem(),
			},
			"total": ObjectProperty{
				Type:        "number",
				Description: "number of keys in the whole tree regardless of truncation",
			},
			"truncated": ObjectProperty{
				Type: "boolean",
			},
		},
	}

	ans["TreeStats"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"treeId": ObjectProperty{
				Type: "string",
			},
			"stats": ObjectProperty{
				Type:       "object",
				Properties: statsProps(),
			},
		},
	}

	ans["TreeReport"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"summary": summaryProp(),
		},
	}

	ans["TreeList"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"trees": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "object",
					Properties: ObjectProperties{
						"name": ObjectProperty{
							Type: "string",
						},
						"created": ObjectProperty{
							Type: "string",
						},
						"numTokens": ObjectProperty{
							Type: "number",
						},
						"numKeys": ObjectProperty{
							Type: "number",
						},
						"numNodes": ObjectProperty{
							Type: "number",
						},
						"maxDepth": ObjectProperty{
							Type: "number",
						},
						"loaded": ObjectProperty{
							Type:        "boolean",
							Description: "whether a worker currently holds the tree in memory",
						},
					},
				},
			},
		},
	}

	ans["TagWord"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"word": ObjectProperty{
				Type: "string",
			},
			"candidates": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type:       "object",
					Properties: parseProps(),
				},
			},
			"resolution": ObjectProperty{
				Type: "object",
				Properties: ObjectProperties{
					"parse": ObjectProperty{
						Type:       "object",
						Properties: parseProps(),
					},
					"score": ObjectProperty{
						Type: "number",
					},
					"signals": ObjectProperty{
						Type: "array",
						Items: &arrayItem{
							Type: "string",
						},
						Description: "which contextual signals fired for the winner",
					},
				},
			},
		},
	}

	ans["SyllabifyWord"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"word": ObjectProperty{
				Type: "string",
			},
			"syllables": ObjectProperty{
				Type: "array",
				Items: &arrayItem{
					Type: "string",
				},
			},
		},
	}

	return ans
}
