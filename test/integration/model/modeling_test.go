// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

//go:build integration

package model_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/umlkit/umlkit/internal/model"
)

var _ = Describe("Building a model end to end", func() {
	var f *model.Factory
	var user, admin, order *model.Class

	BeforeEach(func() {
		f = model.NewFactory(model.NewStore())

		user = createClass(f, "User")
		createAttribute(f, user, "username", "string")
		createAttribute(f, user, "email", "string")
		createOperation(f, user, "login", "bool")

		admin = createClass(f, "Admin")
		createAttribute(f, admin, "adminLevel", "int")

		order = createClass(f, "Order")
		createAttribute(f, order, "totalAmount", "decimal")
		createOperation(f, order, "calculateTotal", "decimal")
	})

	Describe("Relationships", func() {
		It("wires an association's ends to the argument classifiers in order", func() {
			assoc, err := model.CreateAssociation(f, user, order)
			Expect(err).NotTo(HaveOccurred())

			ends := assoc.MemberEnds().Items()
			Expect(ends).To(HaveLen(2))
			Expect(ends[0].Type()).To(BeIdenticalTo(model.Classifier(user)))
			Expect(ends[1].Type()).To(BeIdenticalTo(model.Classifier(order)))
		})

		It("keeps generalization sets on both classifiers consistent", func() {
			gen, err := model.CreateGeneralization(f, user, admin)
			Expect(err).NotTo(HaveOccurred())

			Expect(gen.General()).To(BeIdenticalTo(model.Classifier(user)))
			Expect(gen.Specific()).To(BeIdenticalTo(model.Classifier(admin)))
			Expect(admin.General()).To(ContainElement(model.Classifier(user)))
			Expect(user.Specific()).To(ContainElement(model.Classifier(admin)))
		})

		It("rejects a generalization cycle", func() {
			_, err := model.CreateGeneralization(f, user, admin)
			Expect(err).NotTo(HaveOccurred())

			_, err = model.CreateGeneralization(f, admin, user)
			Expect(errors.Is(err, model.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe("Diagram projection", func() {
		var diagram *model.Diagram

		BeforeEach(func() {
			diagram = f.CreateDiagram()
			diagram.SetName("Overview")
		})

		It("projects classes, then relationships between them", func() {
			_, err := model.CreateGeneralization(f, user, admin)
			Expect(err).NotTo(HaveOccurred())
			assoc, err := model.CreateAssociation(f, user, order)
			Expect(err).NotTo(HaveOccurred())

			up, err := model.Drop(f, user, diagram, 100, 50)
			Expect(err).NotTo(HaveOccurred())
			ap, err := model.Drop(f, admin, diagram, 100, 300)
			Expect(err).NotTo(HaveOccurred())
			op, err := model.Drop(f, order, diagram, 400, 50)
			Expect(err).NotTo(HaveOccurred())

			cp, err := model.Drop(f, assoc, diagram, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			head, tail := cp.Ends()
			Expect(head).To(BeIdenticalTo(up))
			Expect(tail).To(BeIdenticalTo(op))

			gen, err := model.One[*model.Generalization](f)
			Expect(err).NotTo(HaveOccurred())
			gp, err := model.Drop(f, gen, diagram, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			h, t := gp.Ends()
			Expect(h).To(BeIdenticalTo(up))
			Expect(t).To(BeIdenticalTo(ap))

			Expect(diagram.OwnedPresentations().Len()).To(Equal(5))
		})

		It("refuses a relationship drop until both endpoints are present", func() {
			assoc, err := model.CreateAssociation(f, user, order)
			Expect(err).NotTo(HaveOccurred())

			_, err = model.Drop(f, assoc, diagram, 0, 0)
			Expect(errors.Is(err, model.ErrPresentationMissing)).To(BeTrue())

			_, err = model.Drop(f, user, diagram, 100, 50)
			Expect(err).NotTo(HaveOccurred())
			_, err = model.Drop(f, assoc, diagram, 0, 0)
			Expect(errors.Is(err, model.ErrPresentationMissing)).To(BeTrue())

			_, err = model.Drop(f, order, diagram, 400, 50)
			Expect(err).NotTo(HaveOccurred())
			_, err = model.Drop(f, assoc, diagram, 0, 0)
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves a fresh diagram empty", func() {
			other := f.CreateDiagram()
			other.SetName("Empty")
			Expect(other.OwnedPresentations().Len()).To(Equal(0))
		})
	})

	Describe("Selection", func() {
		It("finds elements by kind and name", func() {
			count := 0
			for range model.Select[*model.Class](f) {
				count++
			}
			Expect(count).To(Equal(3))

			got, err := f.One(model.ByName("Admin"))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeIdenticalTo(model.Element(admin)))
		})
	})
})
