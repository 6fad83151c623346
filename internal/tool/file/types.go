package file

import "fmt"

// -- Read File --

type ReadFileRequest struct {
	Path   string `json:"path" jsonschema_description:"Path of the file to read, absolute or relative to the workspace root."`
	Offset int    `json:"offset,omitempty" jsonschema_description:"0-based line number to start reading from."`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum number of lines to return. 0 reads to the end."`
}

func (r *ReadFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	if r.Offset < 0 {
		return ErrInvalidOffset
	}
	if r.Limit < 0 {
		return ErrInvalidLimit
	}
	return nil
}

func (r *ReadFileRequest) String() string {
	return fmt.Sprintf("Reading %s", r.Path)
}

// -- Write File --

type WriteFileRequest struct {
	FilePath string `json:"file_path" jsonschema_description:"Path of the file to create or overwrite."`
	Content  string `json:"content" jsonschema_description:"Full content to write to the file."`
}

func (r *WriteFileRequest) Validate() error {
	if r.FilePath == "" {
		return ErrPathRequired
	}
	return nil
}

func (r *WriteFileRequest) String() string {
	return fmt.Sprintf("Writing %s", r.FilePath)
}

// -- List Directory --

type ListDirectoryRequest struct {
	Path string `json:"path,omitempty" jsonschema_description:"Directory to list. Defaults to the workspace root."`
}

func (r *ListDirectoryRequest) String() string {
	if r.Path == "" {
		return "Listing ."
	}
	return fmt.Sprintf("Listing %s", r.Path)
}

// -- Glob --

type GlobRequest struct {
	Pattern string `json:"pattern" jsonschema_description:"Glob pattern such as **/*.go; supports ** and {a,b} alternatives."`
	Path    string `json:"path,omitempty" jsonschema_description:"Directory to search from. Defaults to the workspace root."`
}

func (r *GlobRequest) Validate() error {
	if r.Pattern == "" {
		return ErrPatternRequired
	}
	return nil
}

func (r *GlobRequest) String() string {
	return fmt.Sprintf("Finding %s", r.Pattern)
}
