// Package docs registers the OpenAPI description served under /swagger.
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
        "/health": {
            "get": {"tags": ["system"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/auth/sign-up": {
            "post": {
                "tags": ["auth"], "summary": "Sign up", "description": "Creates a viewer account",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "tags": ["auth"], "summary": "Sign in",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/v1/alerts": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["alerts"], "summary": "List maintenance alerts",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/alert"}}}, "500": {"description": "failed to load alerts"}}
            }
        },
        "/api/v1/alerts/summary": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["alerts"], "summary": "Alert counts per urgency",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/summary"}}}
            }
        },
        "/api/v1/machines": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["machines"], "summary": "List machines", "responses": {"200": {"description": "OK"}}},
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["machines"], "summary": "Create machine (technician+)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/machine"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/v1/machines/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["machines"], "summary": "Get machine", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["machines"], "summary": "Update machine (technician+)",
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/machine"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {"security": [{"BearerAuth": []}], "tags": ["machines"], "summary": "Delete machine (admin)", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/machines/{id}/maintenance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["machines"], "summary": "Maintenance history of a machine", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/maintenance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "List maintenance records", "responses": {"200": {"description": "OK"}}},
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "Record maintenance (technician+)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/maintenance"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Machine not found"}}
            }
        },
        "/api/v1/maintenance/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "Get maintenance record", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {
                "security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "Update maintenance record (technician+)",
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/maintenance"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {"security": [{"BearerAuth": []}], "tags": ["maintenance"], "summary": "Delete maintenance record (admin)", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/activity": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["activity"], "summary": "List activity",
                "parameters": [
                    {"in": "query", "name": "from", "type": "string"},
                    {"in": "query", "name": "to", "type": "string"},
                    {"in": "query", "name": "type", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users (admin)", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/api/v1/users/{id}/role": {
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Change a user's role (admin)",
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"role": {"type": "string", "enum": ["viewer", "technician", "admin"]}}}}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Last admin"}}
            }
        },
        "/api/v1/users/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete user (admin)", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Last admin"}}}
        },
        "/ws/alerts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["alerts"], "summary": "Live alert stream (WebSocket)", "responses": {"101": {"description": "Switching Protocols"}}}
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "integer", "required": true}
    },
    "definitions": {
        "credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "alert": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "1-Preventiva"},
                "machineId": {"type": "string"},
                "machineName": {"type": "string"},
                "type": {"type": "string", "enum": ["Preventiva", "Calibração"]},
                "dueDate": {"type": "string", "example": "31/03/2023"},
                "urgency": {"type": "string", "enum": ["Vencida", "Urgente", "Próxima"]},
                "daysOverdue": {"type": "integer"},
                "daysRemaining": {"type": "integer"}
            }
        },
        "summary": {
            "type": "object",
            "properties": {"overdue": {"type": "integer"}, "urgent": {"type": "integer"}, "upcoming": {"type": "integer"}, "total": {"type": "integer"}}
        },
        "machine": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "model": {"type": "string"},
                "manufacturer": {"type": "string"},
                "serial_number": {"type": "string"},
                "location": {"type": "string"},
                "acquisition_date": {"type": "string", "example": "2023-01-15"},
                "maintenance_interval_months": {"type": "integer"},
                "calibration_interval_months": {"type": "integer"},
                "status": {"type": "string", "enum": ["Ativo", "Inativo", "Em Manutenção"]}
            }
        },
        "maintenance": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "machine_id": {"type": "integer"},
                "type": {"type": "string", "example": "Preventiva"},
                "description": {"type": "string"},
                "performed_at": {"type": "string"},
                "next_scheduled_date": {"type": "string"},
                "technician": {"type": "string"},
                "cost": {"type": "number"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vitta equipment maintenance API",
	Description:      "Hospital equipment inventory, maintenance records and derived maintenance alerts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
