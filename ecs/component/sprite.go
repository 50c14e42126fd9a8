package component

// Sprite describes how an entity is drawn. Key names an asset catalog entry;
// Width/Height are the drawn size (already multiplied out for tiled sprites).
type Sprite struct {
	Key    string
	Width  float64
	Height float64
	Tiles  int
	Frame  int
	FlipX  bool
}

var SpriteComponent = NewComponent[Sprite]()
