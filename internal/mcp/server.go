package mcp

import (
	"net/http"

	"github.com/2beens/mesocycles/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// NewServer builds an MCP server with read tools over the mesocycles of one user:
// mesocycle list, current mesocycle, calendar, exercise catalog, RIR.
func NewServer(userID string, mesocycles mesocycleReader, catalog catalogReader) *mcp.Server {
	h := NewHandler(NewContextService(userID, mesocycles, catalog))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "mesocycles-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_mesocycles",
		Description: "Returns the user's mesocycles (id, name, weeks, day labels, completion, logged workouts). Optional: search (name filter), sort (default, date, status).",
	}, h.ListMesocyclesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_current_mesocycle",
		Description: "Returns the mesocycle currently being run: the most recent incomplete one, or the most recent one if all are completed. Includes days, exercises and the logged workouts with sets.",
	}, h.GetCurrentMesocycleTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Returns the week by day grid of a mesocycle with reps in reserve (RIR) and completion per cell. Arg: mesocycle_id.",
	}, h.GetCalendarTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_catalog",
		Description: "Returns the global exercise catalog followed by the user's own exercises. Optional filters: muscle_group, search.",
	}, h.GetExerciseCatalogTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_rir",
		Description: "Returns the reps in reserve target for a week of a mesocycle. Args: weeks (4-6), week (1-based). The last week is the deload week (RIR 8).",
	}, h.GetRIRTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. A server is bound to the
// user the auth middleware put in the request context.
func NewHTTPHandler(mesocycles mesocycleReader, catalog catalogReader) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			log.Warnf("mcp: request without user from %s", r.RemoteAddr)
			return nil
		}
		return NewServer(userID, mesocycles, catalog)
	}, nil)
}
