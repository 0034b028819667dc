package interfaces

import (
	"gitlab.com/aoterocom/AOBankroll/models"
	"io"
)

type Renderer interface {
	Render(w io.Writer, result models.SimulationResult) error
}
