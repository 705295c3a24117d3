package cascade

import "fmt"

// Nombres de los pasos de una cascada, en el orden en que se ejecutan.
// Se reportan en CascadeError para que el caller sepa qué alcanzó a
// completarse antes del fallo y pueda reintentar (todos los pasos son
// idempotentes: re-poner active=false o re-borrar un id ausente es no-op).
const (
	StepRootDeactivate          = "root.deactivate"
	StepRootReactivate          = "root.reactivate"
	StepSubcategoriesDeactivate = "subcategories.deactivate"
	StepProductsDeactivate      = "products.deactivate"
	StepProductsDelete          = "products.delete"
	StepSubcategoriesDelete     = "subcategories.delete"
	StepRootDelete              = "root.delete"
)

// CascadeError indica que un paso de una cascada multi-paso falló. Los pasos
// restantes no se ejecutaron; Completed lista los que sí terminaron.
type CascadeError struct {
	Step      string   // paso que falló
	Completed []string // pasos completados antes del fallo
	Err       error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascada detenida en %q (completados: %v): %v", e.Step, e.Completed, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}
