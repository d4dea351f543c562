package touchui

import "image"

// rect returns the rectangle from the origin to p.
func rect(p image.Point) image.Rectangle {
	return image.Rectangle{Max: p}
}
