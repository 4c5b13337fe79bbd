package cjkfont_test

import (
	"github.com/mzhai/cjkfont/pkg/cjkfont"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Candidate paths", func() {
	Context("on supported platforms", func() {
		It("returns a non-empty list for Windows", func() {
			paths := cjkfont.CandidatePathsOn(cjkfont.Windows)
			Expect(paths).NotTo(BeEmpty())
			for _, path := range paths {
				Expect(path).To(HavePrefix(`C:\Windows\Fonts\`))
			}
		})

		It("returns a non-empty list for macOS", func() {
			paths := cjkfont.CandidatePathsOn(cjkfont.MacOS)
			Expect(paths).NotTo(BeEmpty())
			Expect(paths[0]).To(Equal("/System/Library/Fonts/PingFang.ttc"))
		})

		It("returns a non-empty list for Linux", func() {
			paths := cjkfont.CandidatePathsOn(cjkfont.Linux)
			Expect(paths).NotTo(BeEmpty())
			Expect(paths[0]).To(Equal("/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf"))
		})

		It("is deterministic", func() {
			Expect(cjkfont.CandidatePathsOn(cjkfont.Linux)).To(Equal(cjkfont.CandidatePathsOn(cjkfont.Linux)))
		})

		It("returns a copy the caller may modify", func() {
			paths := cjkfont.CandidatePathsOn(cjkfont.Linux)
			paths[0] = "/tmp/not-a-font"
			Expect(cjkfont.CandidatePathsOn(cjkfont.Linux)[0]).NotTo(Equal("/tmp/not-a-font"))
		})
	})

	Context("on unsupported platforms", func() {
		It("returns an empty list", func() {
			Expect(cjkfont.CandidatePathsOn(cjkfont.Other)).To(BeEmpty())
		})
	})

	It("matches the current platform's list", func() {
		Expect(cjkfont.CandidatePaths()).To(Equal(cjkfont.CandidatePathsOn(cjkfont.Current())))
	})
})

var _ = Describe("Platform", func() {
	It("names the recognized platforms", func() {
		Expect(cjkfont.Windows.String()).To(Equal("windows"))
		Expect(cjkfont.MacOS.String()).To(Equal("macos"))
		Expect(cjkfont.Linux.String()).To(Equal("linux"))
		Expect(cjkfont.Other.String()).To(Equal("other"))
	})

	It("recognizes the host platform", func() {
		// Tests only run on the three supported platforms.
		Expect(cjkfont.Current()).NotTo(Equal(cjkfont.Other))
	})
})
