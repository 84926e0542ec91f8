// component/render.go
package component

import "image/color"

// Renderable описывает отрисовку сущности
type Renderable struct {
	Sprite string
	Color  color.RGBA
	Round  bool // drawn as a circle when no sprite is loaded
}
