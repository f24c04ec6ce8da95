package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Suite")
}

// The contract served at /openapi.yml has to stay a valid OpenAPI 3 document,
// since the swagger UI renders straight from it.
var _ = Describe("OpenAPI contract", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate against the OpenAPI 3 spec", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should document every resource the router mounts", func() {
		for _, path := range []string{
			"/auth/login",
			"/auth/refresh",
			"/expense-reports",
			"/expense-reports/stats",
			"/expense-reports/{id}",
			"/expense-reports/{id}/submit",
			"/expense-reports/{id}/approve",
			"/daily-reports",
			"/daily-reports/stats",
			"/candidates",
			"/candidates/{id}/cv",
			"/candidates/{id}/comments",
			"/candidates/{id}/comments/{commentId}",
			"/departments",
			"/locations",
			"/operational/revenue-mix",
			"/users",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should declare bearer auth for protected operations", func() {
		Expect(doc.Components.SecuritySchemes).To(HaveKey("bearerAuth"))

		item := doc.Paths.Find("/expense-reports")
		Expect(item).NotTo(BeNil())
		Expect(item.Get.Security).NotTo(BeNil())
	})

	It("should keep the conflict status on conditional writes", func() {
		item := doc.Paths.Find("/expense-reports/{id}")
		Expect(item).NotTo(BeNil())
		Expect(item.Put.Responses.Status(409)).NotTo(BeNil())
	})
})
