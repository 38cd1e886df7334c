// Package field describes the value types a schema field can carry.
//
// Field types are written in schema files by name:
//
//	fields:
//	  - name: id
//	    type: string
//	  - name: unread_count
//	    type: int
//	  - name: role
//	    type: enum:Role
//
// # Field Types
//
// The package supports the following types:
//
//	string   // NSString * on the object side, std::string natively
//	int      // NSInteger, passed as int
//	int64    // int64_t
//	bool     // BOOL
//	double   // double
//	float    // float
//	time     // NSTimeInterval, passed as time_t
//	enum:E   // an enum named E declared on the native object
//
// Type names are case-insensitive. The identifier of an enum type keeps the
// case it was written with.
package field
