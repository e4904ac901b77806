// Package mongodb implements the store interfaces on top of MongoDB
// collections using the official mongo-driver. Each store wraps exactly one
// collection. Counter mutations use single-document $inc updates so that a
// counter change is atomic at the store level even though the surrounding
// multi-document flows are not.
package mongodb
