// Package mcp exposes the formula catalog and evaluator over the Model
// Context Protocol. The server is stateless: every tool call resolves
// against the catalog loaded at startup plus any formulas appended from a
// custom file, and evaluation holds no cross-call state.
package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"slipstick/internal/catalog"
	"slipstick/internal/engine"
	"slipstick/internal/logging"
)

// Server wraps the MCP SDK server around a loaded catalog.
type Server struct {
	MCPServer *sdkmcp.Server
	catalog   *catalog.Catalog
}

// NewServer creates an MCP server serving the given catalog.
func NewServer(c *catalog.Catalog) *Server {
	s := &Server{catalog: c}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "slipstick", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_formulas",
		Description: "List available formulas with id, name, discipline, category and difficulty. Optional filters.",
	}, s.handleListFormulas)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_formula",
		Description: "Get one formula descriptor: display expression, variables with units and bounds, result unit, worked examples.",
	}, s.handleGetFormula)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "evaluate_formula",
		Description: "Evaluate a formula by id against named inputs. Returns the result, derivation steps, advisory warnings and an accuracy score.",
	}, s.handleEvaluateFormula)
}

// --- Tool input/output types ---

type listFormulasInput struct {
	Discipline string `json:"discipline,omitempty" jsonschema:"filter by discipline code (mechanical, electrical, civil, chemical, aerospace)"`
	Category   string `json:"category,omitempty" jsonschema:"filter by category code, e.g. hydraulics"`
}

type formulaSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Expr       string `json:"expr"`
	Discipline string `json:"discipline,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Units      string `json:"units,omitempty"`
}

type listFormulasOutput struct {
	Formulas []formulaSummary `json:"formulas"`
	Total    int              `json:"total"`
}

type getFormulaInput struct {
	ID string `json:"id" jsonschema:"formula id, e.g. stress-formula"`
}

type variableInfo struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	Unit        string   `json:"unit,omitempty"`
	Constant    *float64 `json:"constant,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Description string   `json:"description,omitempty"`
}

type getFormulaOutput struct {
	formulaSummary
	Description string            `json:"description,omitempty"`
	Variables   []variableInfo    `json:"variables"`
	Examples    []catalog.Example `json:"examples,omitempty"`
}

type evaluateFormulaInput struct {
	ID     string             `json:"id" jsonschema:"formula id"`
	Inputs map[string]float64 `json:"inputs" jsonschema:"map of variable symbol to numeric value; symbols with fixed constants are ignored"`
}

type evaluateFormulaOutput struct {
	Result   float64  `json:"result"`
	Units    string   `json:"units,omitempty"`
	Steps    []string `json:"steps"`
	Warnings []string `json:"warnings,omitempty"`
	Accuracy float64  `json:"accuracy"`
}

// --- Tool handlers ---

func (s *Server) handleListFormulas(_ context.Context, _ *sdkmcp.CallToolRequest, input listFormulasInput) (*sdkmcp.CallToolResult, listFormulasOutput, error) {
	matches := s.catalog.Filter(input.Category, input.Discipline)
	out := listFormulasOutput{Formulas: make([]formulaSummary, 0, len(matches))}
	for _, f := range matches {
		out.Formulas = append(out.Formulas, summarize(f))
	}
	out.Total = len(out.Formulas)
	return nil, out, nil
}

func (s *Server) handleGetFormula(_ context.Context, _ *sdkmcp.CallToolRequest, input getFormulaInput) (*sdkmcp.CallToolResult, getFormulaOutput, error) {
	f := s.catalog.ByID(strings.TrimSpace(input.ID))
	if f == nil {
		return nil, getFormulaOutput{}, fmt.Errorf("unknown formula id %q", input.ID)
	}
	out := getFormulaOutput{
		formulaSummary: summarize(f),
		Description:    f.Description,
		Examples:       f.Examples,
	}
	for i := range f.Variables {
		v := &f.Variables[i]
		out.Variables = append(out.Variables, variableInfo{
			Symbol:      v.Symbol,
			Name:        v.Name,
			Unit:        v.Unit,
			Constant:    v.Value,
			Min:         v.Min,
			Max:         v.Max,
			Description: v.Description,
		})
	}
	return nil, out, nil
}

func (s *Server) handleEvaluateFormula(_ context.Context, _ *sdkmcp.CallToolRequest, input evaluateFormulaInput) (*sdkmcp.CallToolResult, evaluateFormulaOutput, error) {
	f := s.catalog.ByID(strings.TrimSpace(input.ID))
	if f == nil {
		return nil, evaluateFormulaOutput{}, fmt.Errorf("unknown formula id %q", input.ID)
	}
	res, err := engine.Evaluate(f, input.Inputs)
	if err != nil {
		logging.New("mcp").Warn("evaluation failed", "id", f.ID, "error", err)
		return nil, evaluateFormulaOutput{}, err
	}
	return nil, evaluateFormulaOutput{
		Result:   res.Result,
		Units:    res.Units,
		Steps:    res.Steps,
		Warnings: res.Warnings,
		Accuracy: res.Accuracy,
	}, nil
}

func summarize(f *catalog.Formula) formulaSummary {
	return formulaSummary{
		ID:         f.ID,
		Name:       f.Name,
		Expr:       f.Expr,
		Discipline: f.Discipline,
		Category:   f.Category,
		Difficulty: f.Difficulty,
		Units:      f.Units,
	}
}
