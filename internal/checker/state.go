package checker

import (
	"github.com/google/uuid"

	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/types"
)

// Info is the state of one checking session over one file. The reporter is
// shared by every stage of the statement walk.
type Info struct {
	FileName    string
	FileContent string
	SessionID   uuid.UUID
	Reporter    *diagnostics.Reporter
}

func NewInfo(fileName, fileContent string) *Info {
	return &Info{
		FileName:    fileName,
		FileContent: fileContent,
		SessionID:   uuid.New(),
		Reporter:    diagnostics.NewReporter(),
	}
}

// ReturnData is the active return context of the function body being
// walked: the declared return type and every type found at a return site.
type ReturnData struct {
	Annotation types.Type
	FoundTypes []types.Type
}

func NewReturnData(annotation types.Type) *ReturnData {
	return &ReturnData{Annotation: annotation}
}

// PartialItem names a binding whose type is still a partial function.
type PartialItem struct {
	File string
	Name string
}

// StatementSynthData is the per-walk carrier threaded through statement
// checking: the current return context plus the FIFO of partial items. No
// pass in this package consumes PartialList.
type StatementSynthData struct {
	Returns     *ReturnData
	PartialList []PartialItem
}
