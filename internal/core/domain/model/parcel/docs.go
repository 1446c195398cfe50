// Package parcel contains the Parcel aggregate and its value objects:
// Status, TrackingNumber, Details and HistoryEntry.
//
// The aggregate is the single writer of the audit trail. ChangeStatus and
// AssignCourier mutate the parcel and emit the HistoryEntry that the
// application layer persists in the same transaction as the parcel itself,
// so a recorded change and its history row can never diverge.
package parcel
