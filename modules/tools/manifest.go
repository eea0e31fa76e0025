package tools

import (
	"net/http"

	"github.com/dmitrymomot/statetools/handler"
	"github.com/dmitrymomot/statetools/pkg/calculator"
	"github.com/dmitrymomot/statetools/pkg/tool"
)

// Route paths served by Router.
const (
	SessionPath           = "/session"
	CalculatorPath        = "/tools/calculator"
	CalculatorHistoryPath = "/tools/calculator/history"
	ManifestPath          = "/tools"
)

// NewRegistry registers every tool served by Router with its endpoint.
func NewRegistry() *tool.Registry {
	createSession := CreateSessionDefinition()
	createSession.Method, createSession.Path = http.MethodPost, SessionPath

	calc := calculator.Definition()
	calc.Method, calc.Path = http.MethodPost, CalculatorPath

	history := calculator.HistoryDefinition()
	history.Method, history.Path = http.MethodGet, CalculatorHistoryPath

	r := tool.NewRegistry()
	r.MustRegister(createSession, calc, history)
	return r
}

// ManifestResponse lists the available tools.
type ManifestResponse struct {
	Tools []tool.ToolDefinition `json:"tools"`
}

func manifestHandler(registry *tool.Registry) handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.JSON(ManifestResponse{Tools: registry.List()})
	}
}
