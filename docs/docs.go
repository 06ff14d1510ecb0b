// Package docs registers the swagger spec served at /docs/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/articles": {
            "get": {"tags": ["articles"], "summary": "List all articles", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["articles"], "summary": "Publish an article", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/articles/{id}": {
            "get": {"tags": ["articles"], "summary": "Get one article by id", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "patch": {"tags": ["articles"], "summary": "Update an article", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"tags": ["articles"], "summary": "Delete an article", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/articles/{id}/like": {
            "patch": {"tags": ["articles"], "summary": "Like an article", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/articles/category/{name}": {
            "get": {"tags": ["articles"], "summary": "List articles in a category", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/recentArticles": {
            "get": {"tags": ["articles"], "summary": "Newest articles", "responses": {"200": {"description": "OK"}}}
        },
        "/myArticles": {
            "get": {"tags": ["articles"], "summary": "List the authenticated user's articles", "parameters": [{"type": "string", "name": "email", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/top-contributors": {
            "get": {"tags": ["contributors"], "summary": "Top contributors by post count", "responses": {"200": {"description": "OK"}}}
        },
        "/contributors": {
            "get": {"tags": ["contributors"], "summary": "All contributors with their most recent article", "responses": {"200": {"description": "OK"}}}
        },
        "/trending-tags": {
            "get": {"tags": ["contributors"], "summary": "Trending tags by occurrence", "responses": {"200": {"description": "OK"}}}
        },
        "/comments": {
            "get": {"tags": ["comments"], "summary": "List all comments", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["comments"], "summary": "Submit a comment", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/comments/{articleId}": {
            "get": {"tags": ["comments"], "summary": "List comments for an article", "parameters": [{"type": "string", "name": "articleId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/jwt": {
            "post": {"tags": ["auth"], "summary": "Mint an identity token", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register an account", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Sign in with email and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/subscribe": {
            "post": {"tags": ["newsletter"], "summary": "Subscribe to the newsletter", "responses": {"201": {"description": "Created"}, "500": {"description": "Internal Server Error"}}}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "KnowHive API",
	Description:      "Backend API for the KnowHive content sharing platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
