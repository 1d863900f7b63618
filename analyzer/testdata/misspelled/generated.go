// Code generated by hand. DO NOT EDIT.

package misspelled

type GeneratedRecieve struct{}
