// Code generated by hand. DO NOT EDIT.

package generated

type Recieve struct{} // want `Correct the spelling of 'Recieve' in type name Recieve \(sp:typ\)`
