package graph

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// schemaSDL is the full operation surface. Requests naming anything outside
// it are rejected during validation, before any resolution starts.
const schemaSDL = `
type Event {
  id: ID!
  title: String!
  description: String!
  price: Float!
  date: String!
  creator: User!
}

type User {
  id: ID!
  email: String!
  password: String
  createdEvents: [Event!]
}

input EventInput {
  title: String!
  description: String!
  price: Float!
  date: String!
}

input UserInput {
  email: String!
  password: String!
}

type Query {
  events: [Event!]!
}

type Mutation {
  createEvent(eventInput: EventInput!): Event
  createUser(userInput: UserInput!): User
}
`

var schema = gqlparser.MustLoadSchema(&ast.Source{
	Name:  "schema.graphql",
	Input: schemaSDL,
})

// Schema returns the loaded type registry.
func Schema() *ast.Schema {
	return schema
}
