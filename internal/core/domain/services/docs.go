// Package services contains stateless domain services that do not belong
// to a single aggregate. TrackingNumberGenerator produces the unique public
// identifier assigned to every parcel at creation.
package services
