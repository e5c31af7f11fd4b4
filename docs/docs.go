// Package docs serves the Swagger 2.0 document of the v1 API. It is
// maintained by hand; keep paths in step with routes.addTenderRoutes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/nits": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "nits"
                ],
                "summary": "Publish a NIT",
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.PublishNitRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.NitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Duplicate memo number",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/nits/{nit_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "nits"
                ],
                "summary": "Get a NIT with its works",
                "parameters": [
                    {
                        "type": "string",
                        "name": "nit_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.NitResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "nits"
                ],
                "summary": "Delete a NIT without works",
                "parameters": [
                    {
                        "type": "string",
                        "name": "nit_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "NIT has works",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/nits/{nit_id}/works": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Add a work to a NIT",
                "parameters": [
                    {
                        "type": "string",
                        "name": "nit_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.AddWorkRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.WorkResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Duplicate serial number or NIT cancelled",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Get a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WorkResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Get the cached dashboard view of a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WorkSummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/tender-status": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Advance, cancel or retender a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.AdvanceStageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WorkResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Illegal transition or qualification gate closed",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/cancel": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Cancel a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WorkResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Work cannot be cancelled from its status",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/retender": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Retender a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WorkResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Work cannot be retendered from its status",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/work-status": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "works"
                ],
                "summary": "Change the execution status of an awarded work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.WorkStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WorkResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Illegal work status change",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/bids": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bids"
                ],
                "summary": "Register an agency bid",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.RegisterBidRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.BidResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Bidding closed or agency already bid",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/qualification": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bids"
                ],
                "summary": "Get the qualification gate of a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/usecase.QualificationSummary"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/award": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "awards"
                ],
                "summary": "Award the contract to the winning bid",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.AwardRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.AwardResultResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Already awarded or premature",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/payments": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Record a bill payment",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.PaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.PaymentReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Final bill not allowed",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/payments/totals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Get payment totals of a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.TotalsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/works/{work_id}/certificate": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Get the completion certificate of a work",
                "parameters": [
                    {
                        "type": "string",
                        "name": "work_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.CertificateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Work not completed",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/bids/{bid_id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bids"
                ],
                "summary": "Withdraw a bid",
                "parameters": [
                    {
                        "type": "string",
                        "name": "bid_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Bid can no longer be withdrawn",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/bids/{bid_id}/evaluation": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bids"
                ],
                "summary": "Submit the technical evaluation of a bid",
                "parameters": [
                    {
                        "type": "string",
                        "name": "bid_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.TechnicalEvaluationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.BidResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Work is not in technical evaluation",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/bids/{bid_id}/amount": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bids"
                ],
                "summary": "Record the financial bid amount",
                "parameters": [
                    {
                        "type": "string",
                        "name": "bid_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.BidAmountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.BidResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Bid not qualified or work not in financial evaluation",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/awards/{award_id}/agreement": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "awards"
                ],
                "summary": "Record the contract agreement",
                "parameters": [
                    {
                        "type": "string",
                        "name": "award_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.AgreementRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.AgreementResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Agreement already recorded",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        },
        "/awards/{award_id}/delivery": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "awards"
                ],
                "summary": "Record delivery of a supply award",
                "parameters": [
                    {
                        "type": "string",
                        "name": "award_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.DeliveryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.AwardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Concurrent modification",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    },
                    "422": {
                        "description": "Award is not for supply or already delivered",
                        "schema": {
                            "$ref": "#/definitions/pkg.HTTPError"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "detail": {
                    "type": "string"
                }
            }
        },
        "request.PublishNitRequest": {
            "type": "object",
            "required": [
                "memo_date",
                "memo_no"
            ],
            "properties": {
                "memo_no": {
                    "type": "string"
                },
                "memo_date": {
                    "type": "string",
                    "example": "2024-05-01"
                },
                "is_supply": {
                    "type": "boolean"
                }
            }
        },
        "request.AddWorkRequest": {
            "type": "object",
            "required": [
                "serial_no"
            ],
            "properties": {
                "serial_no": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "estimated_cost": {
                    "type": "string",
                    "example": "100000.00"
                }
            }
        },
        "request.RegisterBidRequest": {
            "type": "object",
            "required": [
                "agency_id"
            ],
            "properties": {
                "agency_id": {
                    "type": "string"
                }
            }
        },
        "request.TechnicalEvaluationRequest": {
            "type": "object",
            "required": [
                "document_ref",
                "qualify"
            ],
            "properties": {
                "qualify": {
                    "type": "boolean"
                },
                "document_ref": {
                    "type": "string"
                }
            }
        },
        "request.BidAmountRequest": {
            "type": "object",
            "properties": {
                "bidding_amount": {
                    "type": "string",
                    "example": "92500.50"
                }
            }
        },
        "request.AdvanceStageRequest": {
            "type": "object",
            "required": [
                "tender_status"
            ],
            "properties": {
                "tender_status": {
                    "type": "string",
                    "example": "TechnicalBidOpening"
                }
            }
        },
        "request.WorkStatusRequest": {
            "type": "object",
            "required": [
                "work_status"
            ],
            "properties": {
                "work_status": {
                    "type": "string",
                    "enum": [
                        "yettostart",
                        "workinprogress",
                        "workcompleted",
                        "billpaid"
                    ]
                }
            }
        },
        "request.AwardRequest": {
            "type": "object",
            "required": [
                "winning_bid_id",
                "work_order_memo_date",
                "work_order_memo_no"
            ],
            "properties": {
                "winning_bid_id": {
                    "type": "string"
                },
                "work_order_memo_no": {
                    "type": "string"
                },
                "work_order_memo_date": {
                    "type": "string",
                    "example": "2024-06-01"
                }
            }
        },
        "request.AgreementRequest": {
            "type": "object",
            "required": [
                "agreement_date",
                "agreement_no"
            ],
            "properties": {
                "agreement_no": {
                    "type": "string"
                },
                "agreement_date": {
                    "type": "string",
                    "example": "2024-06-15"
                }
            }
        },
        "request.DeliveryRequest": {
            "type": "object",
            "properties": {
                "delivery_date": {
                    "type": "string",
                    "example": "2024-07-01"
                }
            }
        },
        "request.DeductionsRequest": {
            "type": "object",
            "properties": {
                "income_tax": {
                    "type": "string",
                    "example": "0"
                },
                "labour_welfare_cess": {
                    "type": "string",
                    "example": "0"
                },
                "security_deposit": {
                    "type": "string",
                    "example": "0"
                },
                "cgst": {
                    "type": "string",
                    "example": "0"
                },
                "sgst": {
                    "type": "string",
                    "example": "0"
                },
                "igst": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "request.PaymentRequest": {
            "type": "object",
            "required": [
                "bill_type"
            ],
            "properties": {
                "gross_bill_amount": {
                    "type": "string",
                    "example": "40000.00"
                },
                "deductions": {
                    "$ref": "#/definitions/request.DeductionsRequest"
                },
                "bill_type": {
                    "type": "string",
                    "enum": [
                        "advance bill",
                        "running bill",
                        "final bill"
                    ]
                }
            }
        },
        "response.WorkResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nit_id": {
                    "type": "string"
                },
                "serial_no": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "estimated_cost": {
                    "type": "string"
                },
                "tender_status": {
                    "type": "string"
                },
                "work_status": {
                    "type": "string"
                },
                "tender_round": {
                    "type": "integer"
                },
                "bid_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "qualified_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "award_id": {
                    "type": "string"
                },
                "completion_date": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "response.NitResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "memo_no": {
                    "type": "string"
                },
                "memo_date": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "published": {
                    "type": "boolean"
                },
                "is_supply": {
                    "type": "boolean"
                },
                "cancelled": {
                    "type": "boolean"
                },
                "work_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "works": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/response.WorkResponse"
                    }
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "response.EvaluationResponse": {
            "type": "object",
            "properties": {
                "qualify": {
                    "type": "boolean"
                },
                "document_ref": {
                    "type": "string"
                },
                "evaluated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "response.BidResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "work_id": {
                    "type": "string"
                },
                "agency_id": {
                    "type": "string"
                },
                "round": {
                    "type": "integer"
                },
                "evaluation": {
                    "$ref": "#/definitions/response.EvaluationResponse"
                },
                "bidding_amount": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "response.AwardResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "work_id": {
                    "type": "string"
                },
                "work_order_memo_no": {
                    "type": "string"
                },
                "work_order_memo_date": {
                    "type": "string"
                },
                "delivered": {
                    "type": "boolean"
                },
                "delivery_date": {
                    "type": "string"
                }
            }
        },
        "response.WorkOrderDetailResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "bid_id": {
                    "type": "string"
                },
                "agency_id": {
                    "type": "string"
                },
                "estimated_cost": {
                    "type": "string"
                },
                "bidding_amount": {
                    "type": "string"
                },
                "percentage": {
                    "type": "string"
                }
            }
        },
        "response.AwardResultResponse": {
            "type": "object",
            "properties": {
                "award": {
                    "$ref": "#/definitions/response.AwardResponse"
                },
                "work_order": {
                    "$ref": "#/definitions/response.WorkOrderDetailResponse"
                },
                "work": {
                    "$ref": "#/definitions/response.WorkResponse"
                }
            }
        },
        "response.AgreementResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "award_id": {
                    "type": "string"
                },
                "agreement_no": {
                    "type": "string"
                },
                "agreement_date": {
                    "type": "string"
                }
            }
        },
        "response.DeductionsResponse": {
            "type": "object",
            "properties": {
                "income_tax": {
                    "type": "string"
                },
                "labour_welfare_cess": {
                    "type": "string"
                },
                "security_deposit": {
                    "type": "string"
                },
                "cgst": {
                    "type": "string"
                },
                "sgst": {
                    "type": "string"
                },
                "igst": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "response.PaymentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "work_id": {
                    "type": "string"
                },
                "bill_type": {
                    "type": "string"
                },
                "gross_bill_amount": {
                    "type": "string"
                },
                "deductions": {
                    "$ref": "#/definitions/response.DeductionsResponse"
                },
                "net_amount": {
                    "type": "string"
                },
                "recorded_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "response.AnomalyResponse": {
            "type": "object",
            "properties": {
                "estimated_cost": {
                    "type": "string"
                },
                "total_gross": {
                    "type": "string"
                },
                "excess": {
                    "type": "string"
                }
            }
        },
        "response.TotalsResponse": {
            "type": "object",
            "properties": {
                "work_id": {
                    "type": "string"
                },
                "estimated_cost": {
                    "type": "string"
                },
                "total_gross": {
                    "type": "string"
                },
                "total_net": {
                    "type": "string"
                },
                "pending": {
                    "type": "string"
                },
                "final_bill_recorded": {
                    "type": "boolean"
                },
                "entries": {
                    "type": "integer"
                },
                "anomaly": {
                    "$ref": "#/definitions/response.AnomalyResponse"
                }
            }
        },
        "response.PaymentReceiptResponse": {
            "type": "object",
            "properties": {
                "payment": {
                    "$ref": "#/definitions/response.PaymentResponse"
                },
                "totals": {
                    "$ref": "#/definitions/response.TotalsResponse"
                }
            }
        },
        "response.CertificateResponse": {
            "type": "object",
            "properties": {
                "certificate_no": {
                    "type": "string"
                },
                "nit_reference": {
                    "type": "string"
                },
                "work_id": {
                    "type": "string"
                },
                "serial_no": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "agency_id": {
                    "type": "string"
                },
                "work_order_memo_no": {
                    "type": "string"
                },
                "work_order_memo_date": {
                    "type": "string"
                },
                "agreement_no": {
                    "type": "string"
                },
                "agreement_date": {
                    "type": "string"
                },
                "percentage": {
                    "type": "string"
                },
                "completion_date": {
                    "type": "string"
                },
                "totals": {
                    "$ref": "#/definitions/response.TotalsResponse"
                },
                "payments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/response.PaymentResponse"
                    }
                }
            }
        },
        "usecase.QualificationSummary": {
            "type": "object"
        },
        "response.WorkSummaryResponse": {
            "type": "object",
            "properties": {
                "work": {
                    "$ref": "#/definitions/response.WorkResponse"
                },
                "qualification": {
                    "$ref": "#/definitions/usecase.QualificationSummary"
                },
                "totals": {
                    "$ref": "#/definitions/response.TotalsResponse"
                },
                "generated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Tender Workflow Service API",
	Description:      "Public works tendering: NITs, bids, technical and financial evaluation, award of contract and payments, backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
