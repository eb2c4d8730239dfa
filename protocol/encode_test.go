package protocol_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/stellarsql/stellar/protocol"
)

var _ = Describe("Encoding", func() {
	Describe("EncodeRegister()", func() {
		It("separates user and key with exactly six pipes", func() {
			line := protocol.EncodeRegister("bob", "secretkey")
			Expect(string(line)).To(Equal("bob||||||secretkey\n"))
		})

		It("does not append a trailing semicolon", func() {
			line := protocol.EncodeRegister("alice", "k1")
			Expect(string(line)).NotTo(ContainSubstring(";"))
		})

		It("ends in a newline", func() {
			line := protocol.EncodeRegister("alice", "k1")
			Expect(string(line)).To(HaveSuffix("\n"))
		})

		It("keeps empty fields empty rather than collapsing separators", func() {
			line := protocol.EncodeRegister("", "")
			Expect(string(line)).To(Equal("||||||\n"))
		})
	})

	Describe("EncodeCreateDatabase()", func() {
		It("folds one empty field between the user and the statement", func() {
			line := protocol.EncodeCreateDatabase("bob", "shop")
			Expect(string(line)).To(Equal("bob||||create database shop;\n"))
		})

		It("terminates the statement with a semicolon before the newline", func() {
			line := protocol.EncodeCreateDatabase("bob", "shop")
			Expect(string(line)).To(HaveSuffix(";\n"))
		})
	})

	Describe("EncodeQuery()", func() {
		It("carries user, database and the verbatim query text", func() {
			line := protocol.EncodeQuery("bob", "shop", "select * from items")
			Expect(string(line)).To(Equal("bob||shop||select * from items;\n"))
		})

		It("does not rewrite whitespace inside the query text", func() {
			line := protocol.EncodeQuery("bob", "shop", "select  a1   from t1")
			Expect(string(line)).To(Equal("bob||shop||select  a1   from t1;\n"))
		})
	})

	Describe("ReadReply()", func() {
		It("returns the raw bytes of a single read", func() {
			reply, err := protocol.ReadReply(bytes.NewReader([]byte("OK table created")))
			Expect(err).To(Succeed())
			Expect(reply).To(Equal([]byte("OK table created")))
		})

		It("caps a single reply at MaxReplySize bytes", func() {
			big := strings.Repeat("x", protocol.MaxReplySize*2)

			reply, err := protocol.ReadReply(strings.NewReader(big))
			Expect(err).To(Succeed())
			Expect(len(reply)).To(BeNumerically("<=", protocol.MaxReplySize))
		})

		It("propagates read errors", func() {
			_, err := protocol.ReadReply(bytes.NewReader(nil))
			Expect(err).To(HaveOccurred())
		})
	})
})
