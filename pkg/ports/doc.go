/*
Package ports defines the driven ports (interfaces) for the Cardwright builder.

These interfaces decouple the core tree construction and walking logic from
external collaborators, allowing the builder to work with different
translation providers without knowing their wire details.

# Key Interfaces

  - Translator: batch text translation (one call per translation pass).
*/
package ports
