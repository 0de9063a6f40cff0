// Package services contains the stateless domain services of the print shop:
// the pricing engine, the print time estimator and priority derivation.
package services
