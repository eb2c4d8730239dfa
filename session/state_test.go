package session_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/stellarsql/stellar/session"
)

var _ = Describe("State", func() {
	It("starts empty and live", func() {
		st := session.NewState()

		Expect(st.User()).To(BeEmpty())
		Expect(st.Database()).To(BeEmpty())
		Expect(st.Key()).To(BeEmpty())
		Expect(st.Live()).To(BeTrue())
	})

	Describe("Quit()", func() {
		It("latches: no later mutation brings the session back", func() {
			st := session.NewState()
			st.Quit()
			Expect(st.Live()).To(BeFalse())

			st.SetUser("bob")
			st.CreateUser("bob", "secretkey")
			st.CreateDatabase("shop")
			st.SelectDatabase("shop")

			Expect(st.Live()).To(BeFalse())
		})

		It("makes every mutator a no-op on a dead session", func() {
			st := session.NewState()
			st.Quit()

			st.SetUser("bob")
			Expect(st.User()).To(BeEmpty())

			Expect(st.CreateUser("bob", "secretkey")).To(BeNil())
			Expect(st.User()).To(BeEmpty())
			Expect(st.Key()).To(BeEmpty())

			Expect(st.CreateDatabase("shop")).To(BeNil())
			Expect(st.SelectDatabase("shop")).To(BeNil())
			Expect(st.Database()).To(BeEmpty())
		})
	})

	Describe("BuildQuery()", func() {
		It("never encodes with an empty user", func() {
			st := session.NewState()
			st.CreateDatabase("shop")

			for _, query := range []string{"", "   ", "select a1 from t1"} {
				line, err := st.BuildQuery(query)
				Expect(line).To(BeNil(), "query %q must not encode", query)
				Expect(err).To(MatchError(session.ErrMissingIdentity))
			}
		})

		It("never encodes with an empty database", func() {
			st := session.NewState()
			st.SetUser("bob")

			line, err := st.BuildQuery("select a1 from t1")
			Expect(line).To(BeNil())
			Expect(err).To(MatchError(session.ErrMissingDatabase))
		})

		It("does not mutate state on success", func() {
			st := session.NewState()
			st.CreateUser("bob", "secretkey")
			st.CreateDatabase("shop")

			_, err := st.BuildQuery("select a1 from t1")
			Expect(err).To(Succeed())
			Expect(st.User()).To(Equal("bob"))
			Expect(st.Database()).To(Equal("shop"))
			Expect(st.Key()).To(Equal("secretkey"))
		})
	})

	Describe("CreateUser()", func() {
		It("records both the user and its key", func() {
			st := session.NewState()
			line := st.CreateUser("bob", "secretkey")

			Expect(string(line)).To(Equal("bob||||||secretkey\n"))
			Expect(st.User()).To(Equal("bob"))
			Expect(st.Key()).To(Equal("secretkey"))
		})
	})

	Describe("SetUser()", func() {
		It("records the user but leaves the key untouched", func() {
			st := session.NewState()
			st.SetUser("carol")

			Expect(st.User()).To(Equal("carol"))
			Expect(st.Key()).To(BeEmpty())
		})
	})
})
