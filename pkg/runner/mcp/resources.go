package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	tasksURI      = "taskr://tasks"
	taskURIPrefix = tasksURI + "/"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		tasksURI,
		"Tasks",
		mcp.WithResourceDescription("Every task known to the service with run counts."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(resource, tasksResourceHandler(svc))

	template := mcp.NewResourceTemplate(
		taskURIPrefix+"{id}",
		"Task Details",
		mcp.WithTemplateDescription("A single task with its execution history."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	srv.AddResourceTemplate(template, taskResourceHandler(svc))
}

func tasksResourceHandler(svc *Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tasks, err := svc.ListTasks(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		})
	}
}

func taskResourceHandler(svc *Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := resourceID(request)
		if id == "" {
			return nil, fmt.Errorf("task id is required")
		}

		dto, err := svc.TaskByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"task": dto,
		})
	}
}

// resourceID reads the {id} variable, falling back to the URI itself.
func resourceID(request mcp.ReadResourceRequest) string {
	switch v := request.Params.Arguments["id"].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(request.Params.URI, taskURIPrefix)
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
