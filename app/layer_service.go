package app

import (
	"context"
	"os"
	"path/filepath"

	"homolo/domain/layer"
	"homolo/domain/schema"
	"homolo/internal"
	"homolo/internal/config"
	"homolo/internal/errors"
	"homolo/ports"

	"github.com/google/uuid"
)

// LayerService orchestrates the ingest -> normalize -> structure -> emit
// pipeline for both layer kinds. Each invocation is stateless: fresh tables
// in, one spreadsheet artifact out, no partial output on failure.
type LayerService struct {
	reader   ports.TableReader
	writer   ports.LayerWriter
	defaults config.Defaults
	log      *internal.Logger
}

// NewLayerService creates a new layer service.
func NewLayerService(reader ports.TableReader, writer ports.LayerWriter, defaults config.Defaults) *LayerService {
	return &LayerService{
		reader:   reader,
		writer:   writer,
		defaults: defaults,
		log:      internal.DefaultLogger,
	}
}

// FinancialRequest carries the parameters of one financial layer build.
type FinancialRequest struct {
	InputPath   string
	Sheet       string // input sheet, "" = first
	OutputPath  string
	SheetName   string // output sheet, "" = configured default
	Parent      string
	ParentName  string // "" = configured default
	NoParentRow bool
	Pad         int // 0 = configured default
}

// PersonnelRequest carries the parameters of one personnel layer build.
type PersonnelRequest struct {
	RolesPath      string
	RolesSheet     string
	EmployeesPath  string
	EmployeesSheet string
	OutputPath     string
	SheetName      string // "" = configured default
	ParentCode     string // "" = configured default
}

// LayerResult describes the emitted artifact.
type LayerResult struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Output string `json:"output"`
	Rows   int    `json:"rows"`
}

// BuildFinancialLayer builds one financial layer and writes it out.
func (s *LayerService) BuildFinancialLayer(ctx context.Context, req FinancialRequest) (*LayerResult, error) {
	raw, err := s.reader.ReadTable(req.InputPath, req.Sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read financial input")
	}
	norm, err := schema.Financial().Normalize(raw)
	if err != nil {
		return nil, err
	}

	opts := layer.FinancialOptions{
		Parent:           req.Parent,
		ParentName:       req.ParentName,
		IncludeParentRow: !req.NoParentRow,
		PadWidth:         req.Pad,
	}
	if opts.ParentName == "" {
		opts.ParentName = s.defaults.FinancialParentName
	}
	if opts.PadWidth == 0 {
		opts.PadWidth = s.defaults.FinancialPad
	}
	rows := layer.BuildFinancial(norm, opts)

	sheetName := req.SheetName
	if sheetName == "" {
		sheetName = s.defaults.FinancialSheetName
	}
	if err := s.writer.WriteLayer(req.OutputPath, sheetName, rows); err != nil {
		return nil, errors.Wrap(err, "failed to write financial layer")
	}

	s.log.Info("[LayerService] financial layer %s built (%d rows)", req.Parent, len(rows))
	return &LayerResult{ID: uuid.NewString(), OK: true, Output: req.OutputPath, Rows: len(rows)}, nil
}

// BuildPersonnelLayer builds the roles -> employees hierarchy and writes it
// out.
func (s *LayerService) BuildPersonnelLayer(ctx context.Context, req PersonnelRequest) (*LayerResult, error) {
	rawRoles, err := s.reader.ReadTable(req.RolesPath, req.RolesSheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read roles input")
	}
	roles, err := schema.Roles().Normalize(rawRoles)
	if err != nil {
		return nil, err
	}

	rawEmps, err := s.reader.ReadTable(req.EmployeesPath, req.EmployeesSheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read employees input")
	}
	emps, err := schema.Employees().Normalize(rawEmps)
	if err != nil {
		return nil, err
	}

	parentCode := req.ParentCode
	if parentCode == "" {
		parentCode = s.defaults.PersonnelParentCode
	}
	rows := layer.BuildPersonnel(roles, emps, parentCode)

	sheetName := req.SheetName
	if sheetName == "" {
		sheetName = s.defaults.PersonnelSheetName
	}
	if err := s.writer.WriteLayer(req.OutputPath, sheetName, rows); err != nil {
		return nil, errors.Wrap(err, "failed to write personnel layer")
	}

	s.log.Info("[LayerService] personnel layer %s built (%d rows)", parentCode, len(rows))
	return &LayerResult{ID: uuid.NewString(), OK: true, Output: req.OutputPath, Rows: len(rows)}, nil
}

// FileEntry is one directory listing item.
type FileEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size,omitempty"`
	Error string `json:"error,omitempty"`
}

// FileListing is the result of ListFiles.
type FileListing struct {
	Directory string      `json:"directory"`
	Items     []FileEntry `json:"items"`
	Note      string      `json:"note,omitempty"`
}

// ListFiles lists the entries of a directory. Relative paths resolve against
// the working directory. A missing directory is reported in the note, not as
// an error, so remote callers can probe paths.
func (s *LayerService) ListFiles(dir string) *FileListing {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	listing := &FileListing{Directory: abs, Items: []FileEntry{}}

	entries, err := os.ReadDir(abs)
	if err != nil {
		listing.Note = "directory does not exist or is not readable"
		return listing
	}
	for _, e := range entries {
		entry := FileEntry{
			Name:  e.Name(),
			Path:  filepath.Join(abs, e.Name()),
			IsDir: e.IsDir(),
		}
		if info, err := e.Info(); err != nil {
			entry.Error = err.Error()
		} else if !e.IsDir() {
			entry.Size = info.Size()
		}
		listing.Items = append(listing.Items, entry)
	}
	return listing
}
