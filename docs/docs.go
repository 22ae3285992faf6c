// Package docs registers the OpenAPI description served under /swagger. It is
// maintained by hand alongside the handler annotations.
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
        "/admin/malware/submissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List every malware submission",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MalwareSubmissionsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/admin/malware/verdict": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Record a malware verdict",
                "parameters": [
                    {"description": "Verdict (clean or malware)", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.VerdictRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VerdictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/admin/phishing/submissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List every phishing submission",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PhishingSubmissionsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/admin/phishing/verdict": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Record a phishing verdict",
                "parameters": [
                    {"description": "Verdict (safe or phishing)", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.VerdictRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VerdictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revokes every ID token of the caller issued up to now.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/malware/submissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["malware"],
                "summary": "List the caller's malware submissions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MalwareSubmissionsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["malware"],
                "summary": "Submit a file reference for malware review",
                "parameters": [
                    {"description": "File", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.MalwareSubmitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/password/check": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["password"],
                "summary": "Score a password",
                "parameters": [
                    {"description": "Password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PasswordCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scoring.StrengthResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/phishing/analyze": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Runs the detailed rule set. Results are not stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["phishing"],
                "summary": "Explain the risk of a URL",
                "parameters": [
                    {"description": "URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.URLRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scoring.DetailedAnalysis"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/phishing/check": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["phishing"],
                "summary": "Score a URL and log the result",
                "parameters": [
                    {"description": "URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.URLRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/scoring.URLRiskAssessment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/phishing/submissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["phishing"],
                "summary": "List the caller's phishing submissions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PhishingSubmissionsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["phishing"],
                "summary": "Submit a URL for phishing review",
                "parameters": [
                    {"description": "URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.URLRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a user-role profile on first access.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserProfile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/role": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Set the caller's role",
                "parameters": [
                    {"description": "Role", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/handler.SetRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SetRoleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.MalwareSubmissionsResponse": {
            "type": "object",
            "properties": {
                "submissions": {"type": "array", "items": {"$ref": "#/definitions/model.MalwareSubmission"}}
            }
        },
        "handler.MalwareSubmitRequest": {
            "type": "object",
            "properties": {
                "fileHash": {"type": "string"},
                "fileName": {"type": "string"}
            }
        },
        "handler.PasswordCheckRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "handler.PhishingSubmissionsResponse": {
            "type": "object",
            "properties": {
                "submissions": {"type": "array", "items": {"$ref": "#/definitions/model.PhishingSubmission"}}
            }
        },
        "handler.SetRoleRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["user", "admin"]}
            }
        },
        "handler.SetRoleResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handler.SubmitResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"},
                "submissionId": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "handler.URLRequest": {
            "type": "object",
            "required": ["url"],
            "properties": {
                "url": {"type": "string"}
            }
        },
        "handler.VerdictRequest": {
            "type": "object",
            "required": ["submissionId", "verdict"],
            "properties": {
                "adminNote": {"type": "string"},
                "submissionId": {"type": "string"},
                "verdict": {"type": "string"}
            }
        },
        "handler.VerdictResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "model.MalwareSubmission": {
            "type": "object",
            "properties": {
                "adminNote": {"type": "string"},
                "fileHash": {"type": "string"},
                "fileName": {"type": "string"},
                "id": {"type": "string"},
                "reviewedAt": {"type": "string"},
                "reviewedBy": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "checked"]},
                "submittedAt": {"type": "string"},
                "userId": {"type": "string"},
                "verdict": {"type": "string", "enum": ["not_checked", "clean", "malware"]}
            }
        },
        "model.PhishingSubmission": {
            "type": "object",
            "properties": {
                "adminNote": {"type": "string"},
                "id": {"type": "string"},
                "reviewedAt": {"type": "string"},
                "reviewedBy": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "checked"]},
                "submittedAt": {"type": "string"},
                "url": {"type": "string"},
                "userId": {"type": "string"},
                "verdict": {"type": "string", "enum": ["not_checked", "safe", "phishing"]}
            }
        },
        "model.UserProfile": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin"]},
                "uid": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "scoring.Analysis": {
            "type": "object",
            "properties": {
                "domain": {"type": "string"},
                "hasHttps": {"type": "boolean"},
                "legitimateIndicators": {"type": "array", "items": {"type": "string"}},
                "protocol": {"type": "string"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "suspiciousPatterns": {"type": "array", "items": {"type": "string"}}
            }
        },
        "scoring.DetailedAnalysis": {
            "type": "object",
            "properties": {
                "analysis": {"$ref": "#/definitions/scoring.Analysis"},
                "riskLevel": {"type": "string"},
                "riskScore": {"type": "integer"},
                "status": {"type": "string", "enum": ["SAFE", "PHISHING"]}
            }
        },
        "scoring.PasswordCriteria": {
            "type": "object",
            "properties": {
                "length12": {"type": "boolean"},
                "length8": {"type": "boolean"},
                "lowercase": {"type": "boolean"},
                "noPatterns": {"type": "boolean"},
                "numbers": {"type": "boolean"},
                "symbols": {"type": "boolean"},
                "uppercase": {"type": "boolean"}
            }
        },
        "scoring.StrengthResult": {
            "type": "object",
            "properties": {
                "criteria": {"$ref": "#/definitions/scoring.PasswordCriteria"},
                "feedback": {"type": "string"},
                "score": {"type": "integer"},
                "strength": {"type": "string", "enum": ["Invalid", "Weak", "Medium", "Strong"]}
            }
        },
        "scoring.URLRiskAssessment": {
            "type": "object",
            "properties": {
                "riskScore": {"type": "integer"},
                "status": {"type": "string", "enum": ["SAFE", "PHISHING"]}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the identity provider's ID token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "CyberGuard API",
	Description:      "Password strength, phishing URL scoring and phishing/malware review queues.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
