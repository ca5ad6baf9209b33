package models

// Object is a stored content blob addressed by its hash. Objects are never
// mutated; they are removed only when the item layer releases them.
type Object struct {
	id   ObjectID
	Hash string `json:"hash"`
}

func NewObject(hash string) *Object { return &Object{Hash: hash} }

func (o *Object) ID() ObjectID { return o.id }

func (o *Object) SetID(id ObjectID) error { return assignID(&o.id, id) }
