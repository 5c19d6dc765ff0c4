// Package docs holds the OpenAPI description of the RepCoach API served at
// /swagger. Regenerate it with `swag init -g cmd/api/main.go` after editing
// handler annotations.
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
        "/ai/keywords": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Text",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.KeywordsRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.KeywordsResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Extract keywords",
                "tags": [
                    "AI"
                ]
            }
        },
        "/ai/report": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Named ranges are resolved in the server time zone. No AI call is made when the range has no interactions.",
                "parameters": [
                    {
                        "description": "Range",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ReportRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Summarize interactions over a date range",
                "tags": [
                    "Reports"
                ]
            }
        },
        "/ai/roleplay": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "The AI plays the customer described by persona, or by customer_id when set.",
                "parameters": [
                    {
                        "description": "Scenario and history",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RolePlayTurnRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RolePlayTurnResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Next reply of the simulated customer",
                "tags": [
                    "Role-play"
                ]
            }
        },
        "/ai/roleplay/score": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Scenario and history",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RolePlayScoreRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.RolePlayScore"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Score a practice conversation",
                "tags": [
                    "Role-play"
                ]
            }
        },
        "/auth/google": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Verify a Google ID token, then find or create the matching user",
                "parameters": [
                    {
                        "description": "Google ID token",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.GoogleLoginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Login successful",
                        "schema": {
                            "$ref": "#/definitions/models.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid token",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "summary": "Sign in with Google",
                "tags": [
                    "Authentication"
                ]
            }
        },
        "/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Authenticate user with email and password, returns JWT token",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Login successful",
                        "schema": {
                            "$ref": "#/definitions/models.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "summary": "Login user",
                "tags": [
                    "Authentication"
                ]
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Revoke the current token until it expires",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Logged out",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Logout user",
                "tags": [
                    "Authentication"
                ]
            }
        },
        "/auth/register": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Create a new user account with email and password",
                "parameters": [
                    {
                        "description": "Registration data",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RegisterRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "User registered successfully",
                        "schema": {
                            "$ref": "#/definitions/models.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "User already exists",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "summary": "Register a new user",
                "tags": [
                    "Authentication"
                ]
            }
        },
        "/course-plans": {
            "get": {
                "parameters": [
                    {
                        "description": "Only this customer",
                        "in": "query",
                        "name": "customer_id",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.CoursePlan"
                            },
                            "type": "array"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List course plans",
                "tags": [
                    "Course plans"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "A customer has at most one plan; saving replaces the previous one.",
                "parameters": [
                    {
                        "description": "Plan",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateCoursePlanRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CoursePlan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Save a course plan",
                "tags": [
                    "Course plans"
                ]
            }
        },
        "/course-plans/generate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Uses the customer and their interactions. Replaces the previous plan.",
                "parameters": [
                    {
                        "description": "Customer",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.GenerateCoursePlanRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CoursePlan"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Generate a course plan with AI",
                "tags": [
                    "Course plans"
                ]
            }
        },
        "/course-plans/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Plan ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a course plan",
                "tags": [
                    "Course plans"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Plan ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CoursePlan"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a course plan",
                "tags": [
                    "Course plans"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateCoursePlanRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CoursePlan"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a course plan",
                "tags": [
                    "Course plans"
                ]
            }
        },
        "/customers": {
            "get": {
                "description": "Active customers with their resolved stage. deleted=true lists the trash instead.",
                "parameters": [
                    {
                        "description": "List the trash",
                        "in": "query",
                        "name": "deleted",
                        "type": "boolean"
                    },
                    {
                        "description": "Only this stage (PROSPECTING, QUALIFICATION, ...)",
                        "in": "query",
                        "name": "stage",
                        "type": "string"
                    },
                    {
                        "description": "Search by name or company",
                        "in": "query",
                        "name": "q",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CustomerListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List customers",
                "tags": [
                    "Customers"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Customer",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateCustomerRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Customer"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a customer",
                "tags": [
                    "Customers"
                ]
            }
        },
        "/customers/parse": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Nothing is saved; the client confirms the draft with POST /customers.",
                "parameters": [
                    {
                        "description": "Text or base64 audio",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ParseRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CustomerDraft"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Draft a customer from voice or text",
                "tags": [
                    "Customers"
                ]
            }
        },
        "/customers/{id}": {
            "delete": {
                "description": "Moves the customer to the trash. permanent=true removes a trashed customer for good.",
                "parameters": [
                    {
                        "description": "Customer ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Delete permanently",
                        "in": "query",
                        "name": "permanent",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Moved to the trash",
                        "schema": {
                            "$ref": "#/definitions/models.Customer"
                        }
                    },
                    "204": {
                        "description": "Deleted permanently"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Not in the trash",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a customer",
                "tags": [
                    "Customers"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Customer ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Customer"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a customer",
                "tags": [
                    "Customers"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Partial update. Customers in the trash cannot be edited.",
                "parameters": [
                    {
                        "description": "Customer ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateCustomerRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Customer"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a customer",
                "tags": [
                    "Customers"
                ]
            }
        },
        "/customers/{id}/restore": {
            "post": {
                "parameters": [
                    {
                        "description": "Customer ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Customer"
                        }
                    },
                    "409": {
                        "description": "Not in the trash",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Restore a customer from the trash",
                "tags": [
                    "Customers"
                ]
            }
        },
        "/dashboard": {
            "get": {
                "description": "Funnel counts, totals, today's schedules and the latest interactions.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.DashboardSummary"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Home-screen summary",
                "tags": [
                    "Dashboard"
                ]
            }
        },
        "/dashboard/funnel": {
            "get": {
                "description": "Customers per stage. With stage set, also the customers in that stage.",
                "parameters": [
                    {
                        "description": "PROSPECTING, QUALIFICATION, PROPOSAL, NEGOTIATION, CLOSED_WON or CLOSED_LOST",
                        "in": "query",
                        "name": "stage",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.FunnelResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Sales funnel",
                "tags": [
                    "Dashboard"
                ]
            }
        },
        "/exports": {
            "post": {
                "description": "Builds an .xlsx workbook and returns where to download it.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.ExportResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Export customers, interactions and schedules",
                "tags": [
                    "Exports"
                ]
            }
        },
        "/exports/{file}": {
            "get": {
                "parameters": [
                    {
                        "description": "File name returned by POST /exports",
                        "in": "path",
                        "name": "file",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Download an export",
                "tags": [
                    "Exports"
                ]
            }
        },
        "/interactions": {
            "get": {
                "description": "Newest first.",
                "parameters": [
                    {
                        "description": "Only this customer",
                        "in": "query",
                        "name": "customer_id",
                        "type": "string"
                    },
                    {
                        "description": "Only interactions without a customer",
                        "in": "query",
                        "name": "unlinked",
                        "type": "boolean"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.InteractionListResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List interactions",
                "tags": [
                    "Interactions"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Text or base64 audio is analyzed by the AI into a profile, stage, metrics and next steps.",
                "parameters": [
                    {
                        "description": "Conversation",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateInteractionRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Interaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "AI unavailable, retry manually",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Analyze and store a conversation",
                "tags": [
                    "Interactions"
                ]
            }
        },
        "/interactions/{id}": {
            "delete": {
                "description": "Schedules created from it are kept.",
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete an interaction",
                "tags": [
                    "Interactions"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Interaction"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get an interaction",
                "tags": [
                    "Interactions"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Changing customer_id moves the linked schedules to the new customer. An empty customer_id unlinks.",
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateInteractionRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Interaction"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Edit an interaction",
                "tags": [
                    "Interactions"
                ]
            }
        },
        "/interactions/{id}/next-steps": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "description": "Steps without an id get one.",
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Next steps",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateNextStepsRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Interaction"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Replace the next steps",
                "tags": [
                    "Interactions"
                ]
            }
        },
        "/interactions/{id}/next-steps/{stepId}/schedule": {
            "post": {
                "description": "Returns the existing linked schedule when the step was already promoted.",
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Next step ID",
                        "in": "path",
                        "name": "stepId",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Already scheduled",
                        "schema": {
                            "$ref": "#/definitions/models.Schedule"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Schedule"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Put a next step on the schedule",
                "tags": [
                    "Interactions"
                ]
            }
        },
        "/interactions/{id}/promote": {
            "post": {
                "description": "Uses the AI-extracted profile, links the interaction and moves its schedules.",
                "parameters": [
                    {
                        "description": "Interaction ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.PromoteInteractionResponse"
                        }
                    },
                    "409": {
                        "description": "Already linked",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a customer from an interaction",
                "tags": [
                    "Interactions"
                ]
            }
        },
        "/schedules": {
            "get": {
                "description": "Ordered by date, then time.",
                "parameters": [
                    {
                        "description": "Only this customer",
                        "in": "query",
                        "name": "customer_id",
                        "type": "string"
                    },
                    {
                        "description": "pending or completed",
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    },
                    {
                        "description": "Only this day (YYYY-MM-DD)",
                        "in": "query",
                        "name": "date",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/models.Schedule"
                            },
                            "type": "array"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "List schedules",
                "tags": [
                    "Schedules"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Schedule",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateScheduleRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Schedule"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Create a schedule",
                "tags": [
                    "Schedules"
                ]
            }
        },
        "/schedules/parse": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Relative dates are resolved against today. A spoken customer name is matched among your customers.",
                "parameters": [
                    {
                        "description": "Text or base64 audio",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ParseRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ScheduleDraft"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Draft a schedule from voice or text",
                "tags": [
                    "Schedules"
                ]
            }
        },
        "/schedules/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Schedule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Delete a schedule",
                "tags": [
                    "Schedules"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "Schedule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Schedule"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Get a schedule",
                "tags": [
                    "Schedules"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "An empty customer_id unlinks the customer.",
                "parameters": [
                    {
                        "description": "Schedule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateScheduleRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Schedule"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update a schedule",
                "tags": [
                    "Schedules"
                ]
            }
        },
        "/schedules/{id}/toggle": {
            "post": {
                "parameters": [
                    {
                        "description": "Schedule ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Schedule"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Flip a schedule between pending and completed",
                "tags": [
                    "Schedules"
                ]
            }
        },
        "/users/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.UserInfo"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Current user",
                "tags": [
                    "Users"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "description": "Changes the name, language or theme. Settings follow the user across devices.",
                "parameters": [
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateProfileRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.UserInfo"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "summary": "Update profile and settings",
                "tags": [
                    "Users"
                ]
            }
        }
    },
    "definitions": {
        "models.AuthResponse": {
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.UserInfo"
                }
            },
            "type": "object"
        },
        "models.ConversationMetrics": {
            "properties": {
                "confidence_score": {
                    "type": "number"
                },
                "question_rate": {
                    "type": "number"
                },
                "sentiment": {
                    "type": "string"
                },
                "talk_ratio": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "models.CourseModule": {
            "properties": {
                "duration": {
                    "maxLength": 100,
                    "type": "string"
                },
                "name": {
                    "maxLength": 200,
                    "type": "string"
                },
                "topics": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "required": [
                "name"
            ],
            "type": "object"
        },
        "models.CoursePlan": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "modules": {
                    "items": {
                        "$ref": "#/definitions/models.CourseModule"
                    },
                    "type": "array"
                },
                "objective": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "resources": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "title": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.CreateCoursePlanRequest": {
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "modules": {
                    "items": {
                        "$ref": "#/definitions/models.CourseModule"
                    },
                    "maxItems": 30,
                    "type": "array"
                },
                "objective": {
                    "maxLength": 2000,
                    "type": "string"
                },
                "resources": {
                    "items": {
                        "type": "string"
                    },
                    "maxItems": 50,
                    "type": "array"
                },
                "title": {
                    "maxLength": 300,
                    "type": "string"
                }
            },
            "required": [
                "customer_id",
                "title"
            ],
            "type": "object"
        },
        "models.CreateCustomerRequest": {
            "properties": {
                "address": {
                    "maxLength": 500,
                    "type": "string"
                },
                "company": {
                    "maxLength": 200,
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "industry": {
                    "maxLength": 200,
                    "type": "string"
                },
                "name": {
                    "maxLength": 200,
                    "type": "string"
                },
                "notes": {
                    "maxLength": 5000,
                    "type": "string"
                },
                "phone": {
                    "maxLength": 50,
                    "type": "string"
                },
                "role": {
                    "maxLength": 200,
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "maxItems": 50,
                    "type": "array"
                },
                "wechat": {
                    "maxLength": 100,
                    "type": "string"
                }
            },
            "required": [
                "name"
            ],
            "type": "object"
        },
        "models.CreateInteractionRequest": {
            "properties": {
                "audio_base64": {
                    "type": "string"
                },
                "audio_format": {
                    "enum": [
                        "webm",
                        "mp3",
                        "mp4",
                        "m4a",
                        "wav",
                        "ogg"
                    ],
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "input": {
                    "maxLength": 50000,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.CreateScheduleRequest": {
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "notes": {
                    "maxLength": 5000,
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "title": {
                    "maxLength": 500,
                    "type": "string"
                }
            },
            "required": [
                "date",
                "title"
            ],
            "type": "object"
        },
        "models.Customer": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "deleted_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "updated_at": {
                    "type": "string"
                },
                "wechat": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.CustomerDraft": {
            "properties": {
                "company": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "models.CustomerListResponse": {
            "properties": {
                "customers": {
                    "items": {
                        "$ref": "#/definitions/models.CustomerWithStage"
                    },
                    "type": "array"
                },
                "total": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.CustomerProfile": {
            "properties": {
                "company": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.CustomerWithStage": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "deleted_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "industry": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "stage": {
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "updated_at": {
                    "type": "string"
                },
                "wechat": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.DashboardSummary": {
            "properties": {
                "funnel": {
                    "items": {
                        "$ref": "#/definitions/models.StageCount"
                    },
                    "type": "array"
                },
                "pending_schedules": {
                    "type": "integer"
                },
                "recent_interactions": {
                    "items": {
                        "$ref": "#/definitions/models.Interaction"
                    },
                    "type": "array"
                },
                "today_schedules": {
                    "items": {
                        "$ref": "#/definitions/models.Schedule"
                    },
                    "type": "array"
                },
                "total_customers": {
                    "type": "integer"
                },
                "total_interactions": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.ErrorResponse": {
            "properties": {
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "retryable": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "models.ExportResponse": {
            "properties": {
                "customers": {
                    "type": "integer"
                },
                "file": {
                    "type": "string"
                },
                "rows": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.FunnelResponse": {
            "properties": {
                "customers": {
                    "items": {
                        "$ref": "#/definitions/models.CustomerWithStage"
                    },
                    "type": "array"
                },
                "funnel": {
                    "items": {
                        "$ref": "#/definitions/models.StageCount"
                    },
                    "type": "array"
                },
                "stage": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.GenerateCoursePlanRequest": {
            "properties": {
                "customer_id": {
                    "type": "string"
                }
            },
            "required": [
                "customer_id"
            ],
            "type": "object"
        },
        "models.GoogleLoginRequest": {
            "properties": {
                "id_token": {
                    "type": "string"
                }
            },
            "required": [
                "id_token"
            ],
            "type": "object"
        },
        "models.Intelligence": {
            "properties": {
                "current_stage": {
                    "type": "string"
                },
                "key_interests": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "next_steps": {
                    "items": {
                        "$ref": "#/definitions/models.NextStep"
                    },
                    "type": "array"
                },
                "pain_points": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "probability": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "models.Interaction": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "customer_profile": {
                    "$ref": "#/definitions/models.CustomerProfile"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "intelligence": {
                    "$ref": "#/definitions/models.Intelligence"
                },
                "metrics": {
                    "$ref": "#/definitions/models.ConversationMetrics"
                },
                "owner_id": {
                    "type": "string"
                },
                "raw_input": {
                    "type": "string"
                },
                "suggestions": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.InteractionListResponse": {
            "properties": {
                "interactions": {
                    "items": {
                        "$ref": "#/definitions/models.Interaction"
                    },
                    "type": "array"
                },
                "total": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.KeywordsRequest": {
            "properties": {
                "text": {
                    "maxLength": 50000,
                    "type": "string"
                }
            },
            "required": [
                "text"
            ],
            "type": "object"
        },
        "models.KeywordsResponse": {
            "properties": {
                "keywords": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "models.LoginRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ],
            "type": "object"
        },
        "models.NextStep": {
            "properties": {
                "action": {
                    "maxLength": 500,
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "priority": {
                    "enum": [
                        "high",
                        "medium",
                        "low"
                    ],
                    "type": "string"
                }
            },
            "required": [
                "action"
            ],
            "type": "object"
        },
        "models.ParseRequest": {
            "properties": {
                "audio_base64": {
                    "type": "string"
                },
                "audio_format": {
                    "enum": [
                        "webm",
                        "mp3",
                        "mp4",
                        "m4a",
                        "wav",
                        "ogg"
                    ],
                    "type": "string"
                },
                "text": {
                    "maxLength": 10000,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.PromoteInteractionResponse": {
            "properties": {
                "customer": {
                    "$ref": "#/definitions/models.Customer"
                },
                "interaction": {
                    "$ref": "#/definitions/models.Interaction"
                },
                "migrated_schedules": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.RegisterRequest": {
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "minLength": 2,
                    "type": "string"
                },
                "password": {
                    "minLength": 8,
                    "type": "string"
                }
            },
            "required": [
                "email",
                "name",
                "password"
            ],
            "type": "object"
        },
        "models.ReportRequest": {
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "range": {
                    "enum": [
                        "today",
                        "yesterday",
                        "this_week",
                        "last_7_days",
                        "last_week",
                        "last_30_days",
                        "this_month",
                        "last_month",
                        "this_quarter",
                        "last_quarter",
                        "this_year",
                        "last_year",
                        "custom"
                    ],
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                }
            },
            "required": [
                "range"
            ],
            "type": "object"
        },
        "models.ReportResponse": {
            "properties": {
                "cached": {
                    "type": "boolean"
                },
                "end_date": {
                    "type": "string"
                },
                "interaction_count": {
                    "type": "integer"
                },
                "language": {
                    "type": "string"
                },
                "range": {
                    "type": "string"
                },
                "report": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.RolePlayMessage": {
            "properties": {
                "content": {
                    "maxLength": 5000,
                    "type": "string"
                },
                "role": {
                    "enum": [
                        "rep",
                        "customer"
                    ],
                    "type": "string"
                }
            },
            "required": [
                "content",
                "role"
            ],
            "type": "object"
        },
        "models.RolePlayScore": {
            "properties": {
                "dimensions": {
                    "items": {
                        "$ref": "#/definitions/models.ScoreDimension"
                    },
                    "type": "array"
                },
                "improvements": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "overall": {
                    "type": "integer"
                },
                "strengths": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "summary": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.RolePlayScoreRequest": {
            "properties": {
                "history": {
                    "items": {
                        "$ref": "#/definitions/models.RolePlayMessage"
                    },
                    "maxItems": 100,
                    "minItems": 1,
                    "type": "array"
                },
                "scenario": {
                    "maxLength": 2000,
                    "type": "string"
                }
            },
            "required": [
                "history",
                "scenario"
            ],
            "type": "object"
        },
        "models.RolePlayTurnRequest": {
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "history": {
                    "items": {
                        "$ref": "#/definitions/models.RolePlayMessage"
                    },
                    "maxItems": 100,
                    "type": "array"
                },
                "persona": {
                    "$ref": "#/definitions/models.CustomerProfile"
                },
                "scenario": {
                    "maxLength": 2000,
                    "type": "string"
                }
            },
            "required": [
                "scenario"
            ],
            "type": "object"
        },
        "models.RolePlayTurnResponse": {
            "properties": {
                "reply": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.Schedule": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "plan_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.ScheduleDraft": {
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "customer_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.ScoreDimension": {
            "properties": {
                "comment": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "score": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "models.StageCount": {
            "properties": {
                "count": {
                    "type": "integer"
                },
                "stage": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.SuccessResponse": {
            "properties": {
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "models.UpdateCoursePlanRequest": {
            "properties": {
                "modules": {
                    "items": {
                        "$ref": "#/definitions/models.CourseModule"
                    },
                    "maxItems": 30,
                    "type": "array"
                },
                "objective": {
                    "maxLength": 2000,
                    "type": "string"
                },
                "resources": {
                    "items": {
                        "type": "string"
                    },
                    "maxItems": 50,
                    "type": "array"
                },
                "title": {
                    "maxLength": 300,
                    "minLength": 1,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.UpdateCustomerRequest": {
            "properties": {
                "address": {
                    "maxLength": 500,
                    "type": "string"
                },
                "company": {
                    "maxLength": 200,
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "industry": {
                    "maxLength": 200,
                    "type": "string"
                },
                "name": {
                    "maxLength": 200,
                    "minLength": 1,
                    "type": "string"
                },
                "notes": {
                    "maxLength": 5000,
                    "type": "string"
                },
                "phone": {
                    "maxLength": 50,
                    "type": "string"
                },
                "role": {
                    "maxLength": 200,
                    "type": "string"
                },
                "tags": {
                    "items": {
                        "type": "string"
                    },
                    "maxItems": 50,
                    "type": "array"
                },
                "wechat": {
                    "maxLength": 100,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.UpdateInteractionRequest": {
            "properties": {
                "current_stage": {
                    "maxLength": 200,
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "customer_profile": {
                    "$ref": "#/definitions/models.CustomerProfile"
                },
                "date": {
                    "type": "string"
                },
                "suggestions": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "models.UpdateNextStepsRequest": {
            "properties": {
                "next_steps": {
                    "items": {
                        "$ref": "#/definitions/models.NextStep"
                    },
                    "maxItems": 50,
                    "type": "array"
                }
            },
            "type": "object"
        },
        "models.UpdateProfileRequest": {
            "properties": {
                "language": {
                    "enum": [
                        "zh",
                        "en",
                        "ja",
                        "ko"
                    ],
                    "type": "string"
                },
                "name": {
                    "minLength": 2,
                    "type": "string"
                },
                "theme": {
                    "enum": [
                        "light",
                        "dark",
                        "system"
                    ],
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.UpdateScheduleRequest": {
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "notes": {
                    "maxLength": 5000,
                    "type": "string"
                },
                "status": {
                    "enum": [
                        "pending",
                        "completed"
                    ],
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "title": {
                    "maxLength": 500,
                    "minLength": 1,
                    "type": "string"
                }
            },
            "type": "object"
        },
        "models.UserInfo": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "settings": {
                    "$ref": "#/definitions/models.UserSettings"
                }
            },
            "type": "object"
        },
        "models.UserSettings": {
            "properties": {
                "language": {
                    "type": "string"
                },
                "theme": {
                    "type": "string"
                }
            },
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "in": "header",
            "name": "Authorization",
            "type": "apiKey"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "RepCoach API",
	Description:      "Mobile-first sales CRM with AI conversation analysis and coaching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
