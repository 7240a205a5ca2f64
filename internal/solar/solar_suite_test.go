package solar_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSolar(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Solar Suite")
}
