package images

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Builder drives the docker CLI over the image matrix.
type Builder struct {
	// Docker is the docker client binary, usually just "docker".
	Docker string

	// Context is the build context directory.
	Context string

	// Region selects the package mirrors baked into the images, passed to
	// the build as the REGION build arg.
	Region string

	// Proxy is an optional http proxy url forwarded into the build.
	Proxy string

	// Push pushes every image right after a successful build.
	Push bool

	// Workers bounds the number of parallel docker invocations.
	Workers int
}

// BuildAll builds every image in the matrix and returns the number of images
// that failed. One image failing does not stop the rest of the matrix.
func (b *Builder) BuildAll(ctx context.Context, images []Image) int {
	return b.forEach(ctx, images, b.buildOne)
}

// PushAll pushes every image tag in the matrix.
func (b *Builder) PushAll(ctx context.Context, images []Image) int {
	return b.forEach(ctx, images, func(ctx context.Context, img Image) error {
		return b.docker(ctx, "push", img.Tag)
	})
}

// DeleteAll removes every image tag from the local docker daemon.
func (b *Builder) DeleteAll(ctx context.Context, images []Image) int {
	return b.forEach(ctx, images, func(ctx context.Context, img Image) error {
		return b.docker(ctx, "image", "rm", img.Tag)
	})
}

// forEach runs op over the images on a fixed worker pool and returns the
// failure count.
func (b *Builder) forEach(ctx context.Context, images []Image, op func(context.Context, Image) error) int {
	jobs := make(chan Image)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := 0; i < b.workers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for img := range jobs {
				if err := op(ctx, img); err != nil {
					log.WithField("tag", img.Tag).WithError(err).Error("Docker operation failed.")
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}

	for _, img := range images {
		jobs <- img
	}
	close(jobs)
	wg.Wait()

	return failed
}

func (b *Builder) buildOne(ctx context.Context, img Image) error {
	log.WithFields(log.Fields{
		"tag":  img.Tag,
		"java": img.Java,
		"mcdr": img.MCDR,
	}).Info("Building image.")

	args := []string{
		"build", b.buildContext(),
		"-t", img.Tag,
		"--build-arg", "TYPE=" + img.Type,
		"--build-arg", "JAVA=" + img.Java,
		"--build-arg", "MCDR=" + img.MCDR,
		"--build-arg", "REGION=" + b.Region,
	}
	if b.Proxy != "" {
		args = append(args,
			"--build-arg", "http_proxy="+b.Proxy,
			"--build-arg", "https_proxy="+b.Proxy,
		)
	}

	if err := b.docker(ctx, args...); err != nil {
		return err
	}
	log.WithField("tag", img.Tag).Info("Successfully built image.")

	if b.Push {
		return b.docker(ctx, "push", img.Tag)
	}
	return nil
}

func (b *Builder) docker(ctx context.Context, args ...string) error {
	bin := b.Docker
	if bin == "" {
		bin = "docker"
	}

	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			log.WithField("command", bin+" "+strings.Join(args, " ")).Error(strings.TrimSpace(string(out)))
		}
		return err
	}
	return nil
}

func (b *Builder) buildContext() string {
	if b.Context == "" {
		return "."
	}
	return b.Context
}

func (b *Builder) workers() int {
	if b.Workers < 1 {
		return 1
	}
	return b.Workers
}
