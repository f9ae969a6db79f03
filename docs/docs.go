// Package docs registers the OpenAPI document of the REST API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/login": {
			"post": {
				"summary": "Coordinator login",
				"tags": [
					"auth"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "username and password",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/strategies": {
			"get": {
				"summary": "List scoring strategies",
				"tags": [
					"strategies"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/strategies/{type}": {
			"get": {
				"summary": "Get a scoring strategy",
				"tags": [
					"strategies"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "type",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/strategies/{type}/evaluate": {
			"post": {
				"summary": "Evaluate entries without storing them",
				"tags": [
					"strategies"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "type",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "entries",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/questionnaires/{type}": {
			"get": {
				"summary": "Get a questionnaire definition",
				"tags": [
					"questionnaires"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "type",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "variant",
						"in": "query",
						"required": false,
						"type": "string",
						"description": "language variant"
					}
				]
			}
		},
		"/themes/{scheme}": {
			"get": {
				"summary": "Resolve color tokens for a scheme",
				"tags": [
					"questionnaires"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "scheme",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/missions": {
			"post": {
				"summary": "Create a mission",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "mission name",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"summary": "List own missions",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				]
			}
		},
		"/missions/{code}": {
			"get": {
				"summary": "Get a mission",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				],
				"parameters": [
					{
						"name": "code",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/missions/{code}/close": {
			"post": {
				"summary": "Close a mission",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				],
				"parameters": [
					{
						"name": "code",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/missions/{code}/teams": {
			"get": {
				"summary": "List joined teams",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				],
				"parameters": [
					{
						"name": "code",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/missions/{code}/board": {
			"get": {
				"summary": "Risk board, riskiest first",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				],
				"parameters": [
					{
						"name": "code",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "limit",
						"in": "query",
						"type": "integer"
					}
				]
			}
		},
		"/missions/{code}/reports": {
			"get": {
				"summary": "Finalized reports, newest first",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"CoordinatorAuth": []
					}
				],
				"parameters": [
					{
						"name": "code",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/missions/{code}/join": {
			"post": {
				"summary": "Join a mission as a team",
				"tags": [
					"missions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				},
				"parameters": [
					{
						"name": "code",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "team name",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/assessments": {
			"post": {
				"summary": "Start an assessment",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "type and optional variant",
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"get": {
				"summary": "List in-progress assessments",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				]
			}
		},
		"/assessments/{id}": {
			"get": {
				"summary": "Get an assessment",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			},
			"delete": {
				"summary": "Discard an assessment",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/assessments/{id}/entries/{title}": {
			"put": {
				"summary": "Score one entry; 0 clears it",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "title",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "score",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/assessments/{id}/variant": {
			"put": {
				"summary": "Switch variant and reset entries",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "variant",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/assessments/{id}/finalize": {
			"post": {
				"summary": "Finalize a complete assessment",
				"tags": [
					"assessments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": ""
					}
				]
			}
		},
		"/preferences": {
			"get": {
				"summary": "Get team preferences",
				"tags": [
					"preferences"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				]
			},
			"put": {
				"summary": "Replace team preferences",
				"tags": [
					"preferences"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"TeamAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "preferences",
						"schema": {
							"type": "object"
						}
					}
				]
			}
		}
	},
	"securityDefinitions": {
		"CoordinatorAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		},
		"TeamAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "SAR Risk API",
	Description:      "Risk assessment questionnaires (ORMA, PEACE, SPE) for search and rescue missions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
