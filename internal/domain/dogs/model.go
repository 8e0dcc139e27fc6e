package dogs

// Dog es el único recurso expuesto por la API.
// ID lo asigna el Store al crear; Name y Weight nunca quedan vacíos en un registro persistido.
type Dog struct {
	ID     string
	Name   string
	Weight float64
}

// NewDog son los datos validados para dar de alta un perro.
type NewDog struct {
	Name   string
	Weight float64
}

// Patch es el payload de update tal cual lo manda el cliente.
// nil = no tocar el campo.
type Patch struct {
	Name   *string
	Weight *float64
}

// Apply devuelve una copia de d con los campos presentes en p.
func (p Patch) Apply(d Dog) Dog {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Weight != nil {
		d.Weight = *p.Weight
	}
	return d
}
