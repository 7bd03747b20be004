package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/mesocycles/internal/mesocycle"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// ListMesocyclesInput is the input for list_mesocycles.
type ListMesocyclesInput struct {
	Search string `json:"search,omitempty" jsonschema:"Case-insensitive name filter"`
	Sort   string `json:"sort,omitempty" jsonschema:"Sort option: default, date (newest first) or status (incomplete first)"`
}

func (h *Handler) ListMesocyclesTool() func(context.Context, *mcp.CallToolRequest, ListMesocyclesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListMesocyclesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListMesocycles(ctx, in.Search, in.Sort)
		if err != nil {
			return errorResult("Error listing mesocycles: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) GetCurrentMesocycleTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		m, err := h.service.CurrentMesocycle(ctx)
		if err != nil {
			return errorResult("Error fetching current mesocycle: " + err.Error()), nil, nil
		}
		if m == nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "No mesocycles yet."}},
			}, nil, nil
		}
		return jsonResult(m), nil, nil
	}
}

// CalendarInput is the input for get_calendar.
type CalendarInput struct {
	MesocycleID string `json:"mesocycle_id" jsonschema:"ID of the mesocycle"`
}

func (h *Handler) GetCalendarTool() func(context.Context, *mcp.CallToolRequest, CalendarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CalendarInput) (*mcp.CallToolResult, any, error) {
		if in.MesocycleID == "" {
			return errorResult("mesocycle_id is required"), nil, nil
		}
		if _, err := uuid.Parse(in.MesocycleID); err != nil {
			return errorResult("mesocycle_id must be a UUID"), nil, nil
		}
		view, err := h.service.Calendar(ctx, in.MesocycleID)
		if err != nil {
			return errorResult("Error fetching calendar: " + err.Error()), nil, nil
		}
		return jsonResult(view), nil, nil
	}
}

// ExerciseCatalogInput is the input for get_exercise_catalog.
type ExerciseCatalogInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. Chest, Quads)"`
	Search      string `json:"search,omitempty" jsonschema:"Case-insensitive exercise name filter"`
}

func (h *Handler) GetExerciseCatalogTool() func(context.Context, *mcp.CallToolRequest, ExerciseCatalogInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseCatalogInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ExerciseCatalog(ctx, in.MuscleGroup, in.Search)
		if err != nil {
			return errorResult("Error fetching exercise catalog: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// RIRInput is the input for get_rir.
type RIRInput struct {
	Weeks int `json:"weeks" jsonschema:"Total number of weeks in the mesocycle (4-6)"`
	Week  int `json:"week" jsonschema:"1-based week number"`
}

func (h *Handler) GetRIRTool() func(context.Context, *mcp.CallToolRequest, RIRInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in RIRInput) (*mcp.CallToolResult, any, error) {
		if in.Weeks < mesocycle.MinWeeks || in.Weeks > mesocycle.MaxWeeks {
			return errorResult(fmt.Sprintf("weeks must be between %d and %d", mesocycle.MinWeeks, mesocycle.MaxWeeks)), nil, nil
		}
		if in.Week < 1 || in.Week > in.Weeks {
			return errorResult(fmt.Sprintf("week must be between 1 and %d", in.Weeks)), nil, nil
		}
		return jsonResult(mesocycle.RIRResponse{
			Weeks: in.Weeks,
			Week:  in.Week,
			RIR:   mesocycle.RIR(in.Weeks, in.Week),
		}), nil, nil
	}
}
