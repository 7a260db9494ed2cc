// Package docs holds the OpenAPI document for the interviewd HTTP API.
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
        "/candidates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "parameters": [
                    {"type": "string", "description": "Exact email filter", "name": "email", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Candidate"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Create a candidate",
                "parameters": [
                    {"description": "Candidate", "name": "candidate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Candidate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Candidate"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/candidates/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Partially update a candidate",
                "parameters": [
                    {"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateCandidateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Candidate"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/candidates/{id}/answers": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Append a scored answer",
                "parameters": [
                    {"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer", "name": "answer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Answer"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Candidate"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/candidates/cleanup-duplicates": {
            "post": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Remove duplicate candidates, keeping the newest per email",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CleanupResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/candidates/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Top candidate scores",
                "parameters": [
                    {"type": "integer", "description": "Number of entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.LeaderboardEntry"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/candidates/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["candidates"],
                "summary": "Export candidates as an Excel workbook",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/generateQuestions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Generate six interview questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.QuestionsResponse"}}
                }
            }
        },
        "/evaluateAnswer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Score one answer",
                "parameters": [
                    {"description": "Answer to score", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/interview.AnswerInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.EvaluationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/finalSummary": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Write the final interview summary",
                "parameters": [
                    {"description": "Scored answers", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SummaryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SummaryResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.UpdateCandidateRequest": {
            "type": "object",
            "properties": {"updates": {"$ref": "#/definitions/model.CandidateUpdate"}}
        },
        "handler.CleanupResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "removed": {"type": "integer"},
                "groups": {"type": "array", "items": {"$ref": "#/definitions/model.DuplicateGroup"}}
            }
        },
        "handler.QuestionsResponse": {
            "type": "object",
            "properties": {"questions": {"type": "array", "items": {"$ref": "#/definitions/model.Question"}}}
        },
        "handler.SummaryRequest": {
            "type": "object",
            "properties": {
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.Answer"}},
                "resumeContext": {"type": "string"}
            }
        },
        "handler.SummaryResponse": {
            "type": "object",
            "properties": {"summary": {"type": "string"}}
        },
        "interview.AnswerInput": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "resumeContext": {"type": "string"}
            }
        },
        "model.Answer": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "score": {"type": "number"},
                "feedback": {"type": "string"}
            }
        },
        "model.Candidate": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string", "enum": ["not-started", "in-progress", "completed"]},
                "score": {"type": "number"},
                "summary": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.Answer"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.CandidateUpdate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string", "enum": ["not-started", "in-progress", "completed"]},
                "score": {"type": "number"},
                "summary": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/model.Answer"}}
            }
        },
        "model.DuplicateGroup": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "kept": {"type": "string"},
                "removed": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.EvaluationResult": {
            "type": "object",
            "properties": {
                "score": {"type": "number"},
                "feedback": {"type": "string"}
            }
        },
        "model.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "score": {"type": "number"},
                "rank": {"type": "integer"}
            }
        },
        "model.Question": {
            "type": "object",
            "properties": {
                "q": {"type": "string"},
                "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
                "time": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "interviewd API",
	Description:      "Candidate records and AI-assisted interview scoring.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
