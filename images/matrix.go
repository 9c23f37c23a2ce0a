package images

import "fmt"

// Java versions the runtime images are published for.
var javaVersions = []string{"8", "11", "17", "21"}

// MCDR releases the mcdr flavored images track.
var mcdrVersions = []string{"2.13", "2.12", "2.11", "2.10"}

// Image is one buildable entry of the runtime image matrix.
type Image struct {
	Java string
	Type string // general or mcdr
	MCDR string // empty for general images
	Tag  string
}

// Matrix returns every image the registry publishes: a general image per java
// version, followed by its mcdr variants.
func Matrix(registry string) []Image {
	var images []Image
	for _, java := range javaVersions {
		images = append(images, Image{
			Java: java,
			Type: "general",
			Tag:  fmt.Sprintf("%s:general-j%s", registry, java),
		})
		for _, mcdr := range mcdrVersions {
			images = append(images, Image{
				Java: java,
				Type: "mcdr",
				MCDR: mcdr,
				Tag:  fmt.Sprintf("%s:mcdr-j%s-%s", registry, java, mcdr),
			})
		}
	}
	return images
}
