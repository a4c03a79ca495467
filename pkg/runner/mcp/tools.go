package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(listTasksTool(), listTasksHandler(svc))
	srv.AddTool(searchTasksTool(), searchTasksHandler(svc))
	srv.AddTool(getTaskTool(), getTaskHandler(svc))
	srv.AddTool(saveTaskTool(), saveTaskHandler(svc))
	srv.AddTool(deleteTaskTool(), deleteTaskHandler(svc))
	srv.AddTool(executeTaskTool(), executeTaskHandler(svc))
}

func listTasksTool() mcp.Tool {
	return mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List every task with its run count and last run."),
	)
}

func listTasksHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tasks, err := svc.ListTasks(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		})
	}
}

func searchTasksTool() mcp.Tool {
	return mcp.NewTool(
		"search_tasks",
		mcp.WithDescription("Find tasks whose name contains the query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to look for in task names."),
		),
	)
}

func searchTasksHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tasks, err := svc.SearchTasks(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query": query,
			"tasks": tasks,
			"count": len(tasks),
		})
	}
}

func getTaskTool() mcp.Tool {
	return mcp.NewTool(
		"get_task",
		mcp.WithDescription("Fetch a single task with its execution history."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)
}

func getTaskHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.TaskByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func saveTaskTool() mcp.Tool {
	return mcp.NewTool(
		"save_task",
		mcp.WithDescription("Create a task, or replace the name, owner and command of an existing one. Commands with destructive programs or shell chaining are rejected."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier chosen by the caller."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Task name, at least 2 characters."),
		),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("Task owner, at least 2 characters."),
		),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("Shell command, at least 3 characters."),
		),
		mcp.WithBoolean("update",
			mcp.Description("Update an existing task instead of creating one. Execution history is kept."),
		),
	)
}

func saveTaskHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SaveOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := svc.SaveTask(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func deleteTaskTool() mcp.Tool {
	return mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to delete."),
		),
	)
}

func deleteTaskHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := svc.DeleteTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func executeTaskTool() mcp.Tool {
	return mcp.NewTool(
		"execute_task",
		mcp.WithDescription("Run a task on the service and return it with the new execution."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to run."),
		),
	)
}

func executeTaskHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := svc.ExecuteTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
