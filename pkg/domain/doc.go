/*
Package domain contains the core data model for the Cardwright builder.

It defines the card tree entities and is kept free of I/O, catalogs, and
collaborator concerns, following Hexagonal Architecture principles.

# Key Entities

  - Node: one element of the card tree (leaf or composite), with an ordered
    attribute map and optional item/action containers.
  - Shape: the structural identity of a node kind (container field names,
    action-family membership, translatable attributes).
  - LifecycleHooks: callbacks emitted by the builder for observability.

Ownership flows strictly parent to child through the containers; the parent
link on a node is identity-only and never serialized.
*/
package domain
