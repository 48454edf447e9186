// Package mcpserver exposes the layer builders as MCP tools. The tool names
// and parameters mirror the CLI so remote callers and shell users share one
// vocabulary.
package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"homolo/app"
	"homolo/internal"
	"homolo/internal/config"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps an MCP server with the layer tools registered.
type Server struct {
	mcp      *server.MCPServer
	svc      *app.LayerService
	defaults config.Defaults
	log      *internal.Logger
}

// NewServer creates the MCP server and registers the tools.
func NewServer(svc *app.LayerService, defaults config.Defaults) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"homolo-mcp",
			"1.1.0",
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		svc:      svc,
		defaults: defaults,
		log:      internal.DefaultLogger,
	}
	s.registerTools()
	return s
}

// Handler returns the streamable HTTP transport for mounting at the router
// root.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp, server.WithStateLess(true))
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("build_layer_10_financial",
		mcp.WithDescription("Builds a financial layer (parent/symbol/name/input_cost) from a table with code, description, value columns and writes it to an xlsx workbook."),
		mcp.WithString("input_path", mcp.Required(), mcp.Description("Input file (CSV/XLSX)")),
		mcp.WithString("output_path", mcp.Required(), mcp.Description("Output xlsx path")),
		mcp.WithString("parent", mcp.Required(), mcp.Description("Parent symbol, e.g. 10.01")),
		mcp.WithString("sheet", mcp.Description("Input sheet name when the input is a workbook")),
		mcp.WithString("sheet_name", mcp.DefaultString(s.defaults.FinancialSheetName), mcp.Description("Output sheet name")),
		mcp.WithString("parent_name", mcp.DefaultString(s.defaults.FinancialParentName), mcp.Description("Display name of the parent header row")),
		mcp.WithBoolean("no_parent_row", mcp.DefaultBool(false), mcp.Description("Skip the parent header row")),
		mcp.WithNumber("pad", mcp.DefaultNumber(float64(s.defaults.FinancialPad)), mcp.Description("Zero-pad width for numeric codes")),
	), s.handleFinancial)

	s.mcp.AddTool(mcp.NewTool("build_layer_20_personal",
		mcp.WithDescription("Builds the personnel layer (roles -> employees hierarchy) and writes it to an xlsx workbook."),
		mcp.WithString("roles_path", mcp.Required(), mcp.Description("Roles table (code, role)")),
		mcp.WithString("empleados_path", mcp.Required(), mcp.Description("Employees table (id, name, cost, role and/or cargo)")),
		mcp.WithString("output_path", mcp.Required(), mcp.Description("Output xlsx path")),
		mcp.WithString("roles_sheet", mcp.Description("Roles sheet name when the input is a workbook")),
		mcp.WithString("empleados_sheet", mcp.Description("Employees sheet name when the input is a workbook")),
	), s.handlePersonnel)

	s.mcp.AddTool(mcp.NewTool("file_list",
		mcp.WithDescription("Lists the files of a directory (relative to the working directory or absolute)."),
		mcp.WithString("dir_path", mcp.DefaultString("."), mcp.Description("Directory to list")),
	), s.handleFileList)
}

func (s *Server) handleFinancial(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath, err := req.RequireString("input_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := req.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	parent, err := req.RequireString("parent")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.svc.BuildFinancialLayer(ctx, app.FinancialRequest{
		InputPath:   inputPath,
		Sheet:       req.GetString("sheet", ""),
		OutputPath:  outputPath,
		SheetName:   req.GetString("sheet_name", s.defaults.FinancialSheetName),
		Parent:      parent,
		ParentName:  req.GetString("parent_name", s.defaults.FinancialParentName),
		NoParentRow: req.GetBool("no_parent_row", false),
		Pad:         req.GetInt("pad", s.defaults.FinancialPad),
	})
	if err != nil {
		s.log.Warn("[MCP] build_layer_10_financial failed: %v", err)
		return mcp.NewToolResultErrorFromErr("financial layer build failed", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handlePersonnel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rolesPath, err := req.RequireString("roles_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	empsPath, err := req.RequireString("empleados_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := req.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.svc.BuildPersonnelLayer(ctx, app.PersonnelRequest{
		RolesPath:      rolesPath,
		RolesSheet:     req.GetString("roles_sheet", ""),
		EmployeesPath:  empsPath,
		EmployeesSheet: req.GetString("empleados_sheet", ""),
		OutputPath:     outputPath,
	})
	if err != nil {
		s.log.Warn("[MCP] build_layer_20_personal failed: %v", err)
		return mcp.NewToolResultErrorFromErr("personnel layer build failed", err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleFileList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listing := s.svc.ListFiles(req.GetString("dir_path", "."))
	return jsonResult(listing)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to encode result", err), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
