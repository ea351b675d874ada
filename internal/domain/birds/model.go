package birds

// Bird es la entidad persistida: un registro plano con tres strings.
// No valida nada; cualquier valor es aceptado en cualquier campo.
//
// El zero value es usable: todos los campos vacíos hasta que se setean.
// No es seguro para uso concurrente; quien comparta una instancia sincroniza afuera.
type Bird struct {
	id      string
	species string
	size    string
}

// New crea un Bird vacío.
func New() *Bird {
	return &Bird{}
}

// ID devuelve el identificador (vacío si todavía no fue asignado).
func (b *Bird) ID() string {
	return b.id
}

func (b *Bird) SetID(id string) {
	b.id = id
}

func (b *Bird) Species() string {
	return b.species
}

func (b *Bird) SetSpecies(species string) {
	b.species = species
}

func (b *Bird) Size() string {
	return b.size
}

func (b *Bird) SetSize(size string) {
	b.size = size
}
