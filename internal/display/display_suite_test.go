package display

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDisplaySuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Display Suite")
}
