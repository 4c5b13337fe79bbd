package cjkfont_test

import (
	"errors"

	"github.com/mzhai/cjkfont/pkg/cjkfont"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolve", func() {
	Context("on an unsupported platform", func() {
		It("fails without touching the filesystem", func() {
			_, err := cjkfont.ResolveOn(cjkfont.Other)
			Expect(err).To(MatchError(cjkfont.ErrUnsupportedPlatform))
		})
	})
})

var _ = Describe("Errors", func() {
	It("names the platform in NotFoundError", func() {
		err := &cjkfont.NotFoundError{Platform: cjkfont.MacOS}
		Expect(err.Error()).To(ContainSubstring("macos"))
	})

	It("unwraps the cause of a ReadError", func() {
		cause := errors.New("permission denied")
		err := &cjkfont.ReadError{Path: "/usr/share/fonts/x.ttc", Err: cause}
		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("/usr/share/fonts/x.ttc"))
	})
})
